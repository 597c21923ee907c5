package sinks

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vsnam19/vsnlogger/internal/format"
	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// File sink limits. Zero-valued parameters take the defaults; larger
// requests are clamped to the upper bounds.
const (
	DefaultMaxFileSize = 10 << 20 // 10 MiB
	DefaultMaxFiles    = 5
	MaxFileSize        = 1 << 30 // 1 GiB
	MaxFiles           = 100
)

// stdoutWriter hides os.Stdout's Sync method: syncing a piped stdout
// reports EINVAL on some platforms and a flush must not fail for it.
type stdoutWriter struct{}

func (stdoutWriter) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

// NewConsole returns a stdout sink, colored or plain.
func NewConsole(colored bool) (*Sink, codes.Code) {
	if !acquire() {
		return nil, codes.ResourceUnavailable
	}
	return &Sink{
		kind:    KindConsole,
		colored: colored,
		ws:      zapcore.Lock(zapcore.AddSync(stdoutWriter{})),
	}, codes.OK
}

// NewFile returns a file sink, creating the parent directory tree when
// absent. rotate selects a size/count-rotating file; otherwise a single
// append-mode file is used.
func NewFile(path string, rotate bool, maxSize, maxFiles int) (*Sink, codes.Code) {
	if path == "" {
		return nil, codes.InvalidParameter
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	if maxSize > MaxFileSize {
		maxSize = MaxFileSize
	}
	if maxFiles > MaxFiles {
		maxFiles = MaxFiles
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, codes.PathCreationFailed
		}
	}
	if !acquire() {
		return nil, codes.ResourceUnavailable
	}

	if rotate {
		// lumberjack sizes in megabytes; round up so small caps rotate.
		mb := (maxSize + (1 << 20) - 1) >> 20
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    mb,
			MaxBackups: maxFiles,
		}
		return &Sink{
			kind:     KindFile,
			path:     path,
			maxSize:  maxSize,
			maxFiles: maxFiles,
			ws:       zapcore.AddSync(lj),
			closer:   lj,
		}, codes.OK
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		live.Add(-1)
		if os.IsPermission(err) {
			return nil, codes.PermissionDenied
		}
		return nil, codes.FileError
	}
	return &Sink{
		kind:     KindFile,
		path:     path,
		maxSize:  maxSize,
		maxFiles: maxFiles,
		ws:       zapcore.Lock(f),
		closer:   f,
	}, codes.OK
}

// NewSyslog returns a syslog sink. ident defaults to "vsnlogger" and
// is truncated to 32 bytes; facility follows syslog numbering. When
// formatting is set, messages carry a level/logger prefix.
func NewSyslog(ident string, options, facility int, formatting bool) (*Sink, codes.Code) {
	if ident == "" {
		ident = format.DefaultIdent
	}
	if len(ident) > format.MaxIdentLen {
		ident = ident[:format.MaxIdentLen]
	}
	if !acquire() {
		return nil, codes.ResourceUnavailable
	}
	w, err := dialSyslog(facility, ident)
	if err != nil {
		live.Add(-1)
		return nil, codes.Unknown
	}
	return &Sink{
		kind:       KindSyslog,
		ident:      ident,
		formatting: formatting,
		sl:         w,
		closer:     w,
	}, codes.OK
}

// NewNull returns a sink that discards all writes. Useful for
// disabling output without removing the logger; still counts against
// the allocation cap.
func NewNull() (*Sink, codes.Code) {
	if !acquire() {
		return nil, codes.ResourceUnavailable
	}
	return &Sink{kind: KindNull}, codes.OK
}

// NewMulti assembles up to MaxPerLogger sinks in the fixed order
// console, file, syslog according to the flags. When every flag is
// off, or every requested sink failed, a single colored console sink is
// the fallback. Individual failures skip that sink; only a fully empty
// result is an error.
func NewMulti(console bool, filePath string, useSyslog bool) ([]*Sink, codes.Code) {
	var out []*Sink

	if console {
		if s, c := NewConsole(true); c == codes.OK {
			out = append(out, s)
		}
	}
	if filePath != "" {
		if s, c := NewFile(filePath, true, 0, 0); c == codes.OK {
			out = append(out, s)
		}
	}
	if useSyslog {
		if s, c := NewSyslog("", 0, 0, true); c == codes.OK {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		s, c := NewConsole(true)
		if c != codes.OK {
			return nil, c
		}
		out = append(out, s)
	}
	// Only three kinds exist today; the cap holds if more are added.
	if len(out) > MaxPerLogger {
		for _, s := range out[MaxPerLogger:] {
			_ = s.Release()
		}
		out = out[:MaxPerLogger]
	}
	return out, codes.OK
}
