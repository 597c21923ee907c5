package vsnlog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/vsnam19/vsnlogger/internal/sinks"
)

// Level is the severity of a log record.
type Level int

// Severity levels, lowest first. The numeric values are part of the
// configuration contract: a log_level key may hold either the number
// or the name.
const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	CriticalLevel
	OffLevel
)

// String returns the level's lower-case name.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	case OffLevel:
		return "off"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "critical", "crit":
		return CriticalLevel, nil
	case "off":
		return OffLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown level %q", s)
}

// resolveLevel interprets a configured log_level value, which may be
// numeric (the Level constants) or a name. Unparseable values keep the
// default.
func resolveLevel(raw string, def Level) Level {
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < int(TraceLevel) || n > int(OffLevel) {
			return def
		}
		return Level(n)
	}
	if l, err := ParseLevel(raw); err == nil {
		return l
	}
	return def
}

func (l Level) zap() zapcore.Level {
	switch l {
	case TraceLevel:
		return sinks.TraceLevel
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case CriticalLevel:
		return sinks.CriticalLevel
	default:
		return sinks.CriticalLevel + 1 // gates everything out
	}
}
