package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// DefaultIdent names records whose component is unset.
const DefaultIdent = "vsnlogger"

// MaxIdentLen bounds the component/ident field in syslog output.
const MaxIdentLen = 32

// MaxExtraFields bounds the additional key/value pairs a JSON record
// may carry; excess fields are ignored.
const MaxExtraFields = 32

// Hook for tests.
var now = time.Now

// Timestamp returns the current UTC time as ISO8601 with millisecond
// precision, e.g. 2025-03-01T12:34:56.789Z.
func Timestamp() string {
	return now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// JSON renders a record as a single-line JSON object. Message and
// level are required; component is included only when non-empty. Extra
// fields are emitted in sorted key order, capped at MaxExtraFields.
func JSON(message, level, component string, extra map[string]string) (string, codes.Code) {
	if message == "" || level == "" {
		return "", codes.InvalidParameter
	}

	var b strings.Builder
	b.WriteString(`{"timestamp":"`)
	b.WriteString(Timestamp())
	b.WriteString(`","level":"`)
	escapeJSON(&b, level)
	b.WriteString(`"`)
	if component != "" {
		b.WriteString(`,"component":"`)
		escapeJSON(&b, component)
		b.WriteString(`"`)
	}
	b.WriteString(`,"message":"`)
	escapeJSON(&b, message)
	b.WriteString(`"`)

	if len(extra) > 0 {
		keys := make([]string, 0, len(extra))
		for k := range extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > MaxExtraFields {
			keys = keys[:MaxExtraFields]
		}
		for _, k := range keys {
			b.WriteString(`,"`)
			escapeJSON(&b, k)
			b.WriteString(`":"`)
			escapeJSON(&b, extra[k])
			b.WriteString(`"`)
		}
	}
	b.WriteString("}")
	return b.String(), codes.OK
}

// Syslog renders a record as <priority>timestamp component: message.
// The component defaults to DefaultIdent and is truncated to
// MaxIdentLen.
func Syslog(message, level, component string) string {
	if component == "" {
		component = DefaultIdent
	}
	if len(component) > MaxIdentLen {
		component = component[:MaxIdentLen]
	}
	return fmt.Sprintf("<%d>%s %s: %s", SyslogPriority(level), Timestamp(), component, message)
}

// SyslogPriority maps a level name to its syslog severity.
// Unrecognized levels map to informational.
func SyslogPriority(level string) int {
	switch level {
	case "trace", "debug":
		return 7
	case "info":
		return 6
	case "warn":
		return 4
	case "error":
		return 3
	case "critical":
		return 2
	default:
		return 6
	}
}

// Console renders a record as [timestamp] [level] [component] message,
// omitting the component bracket when empty.
func Console(message, level, component string) string {
	if component == "" {
		return fmt.Sprintf("[%s] [%s] %s", Timestamp(), level, message)
	}
	return fmt.Sprintf("[%s] [%s] [%s] %s", Timestamp(), level, component, message)
}

func escapeJSON(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
}
