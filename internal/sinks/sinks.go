package sinks

import (
	"io"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// Kind identifies a sink's destination type.
type Kind int

const (
	KindConsole Kind = iota
	KindFile
	KindSyslog
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindFile:
		return "file"
	case KindSyslog:
		return "syslog"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// MaxLive caps the number of live sinks process-wide.
const MaxLive = 64

// MaxPerLogger caps the sinks a single logger may own.
const MaxPerLogger = 8

var live atomic.Int32

// LiveCount reports the number of sink allocations currently held.
func LiveCount() int {
	return int(live.Load())
}

func acquire() bool {
	for {
		n := live.Load()
		if n >= MaxLive {
			return false
		}
		if live.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Sink is an output destination descriptor plus the machinery to build
// a zapcore core for it under a given pattern preset.
type Sink struct {
	kind       Kind
	colored    bool
	path       string
	ident      string
	formatting bool
	maxSize    int
	maxFiles   int

	ws       zapcore.WriteSyncer
	sl       syslogWriter
	closer   io.Closer
	released atomic.Bool
}

// Kind reports the sink's destination type.
func (s *Sink) Kind() Kind { return s.kind }

// Colored reports whether the sink renders level colors. Only console
// sinks can be colored.
func (s *Sink) Colored() bool { return s.colored }

// Path reports the file path for file sinks, empty otherwise.
func (s *Sink) Path() string { return s.path }

// MaxSize reports the effective rotation size in bytes for file sinks.
func (s *Sink) MaxSize() int { return s.maxSize }

// MaxFiles reports the effective rotated-file count for file sinks.
func (s *Sink) MaxFiles() int { return s.maxFiles }

// Build returns the zapcore core realizing this sink for a pattern
// preset and level gate.
func (s *Sink) Build(preset string, enab zapcore.LevelEnabler) zapcore.Core {
	switch s.kind {
	case KindNull:
		return zapcore.NewNopCore()
	case KindSyslog:
		return &syslogCore{LevelEnabler: enab, sink: s}
	default:
		return zapcore.NewCore(EncoderFor(preset, s.colored), s.ws, enab)
	}
}

// Release returns the sink's allocation slot and closes any underlying
// resource. Safe to call more than once.
func (s *Sink) Release() error {
	if !s.released.CompareAndSwap(false, true) {
		return nil
	}
	live.Add(-1)
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
