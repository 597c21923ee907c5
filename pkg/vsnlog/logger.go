package vsnlog

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/vsnam19/vsnlogger/internal/sinks"
	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// MaxTemplateLen bounds the format template accepted by the leveled
// calls. The bound applies to the template, not the rendered message.
const MaxTemplateLen = 256

// Logger is a named logger bound to an ordered sink set. Leveled calls
// are safe for unsynchronized concurrent use once the logger is
// registered.
type Logger struct {
	name      string
	component string
	parent    *Logger
	sinks     []*sinks.Sink
	core      atomic.Value // holds coreBox
}

type coreBox struct{ core zapcore.Core }

func (l *Logger) loadCore() zapcore.Core {
	if l.parent != nil {
		return l.parent.loadCore()
	}
	v := l.core.Load()
	if v == nil {
		return nil
	}
	return v.(coreBox).core
}

// Name returns the logger's registered name.
func (l *Logger) Name() string { return l.name }

// rebuild tees the sinks into a fresh core under the given preset and
// level gate. Called under the registry lock.
func (l *Logger) rebuild(preset string, enab zapcore.LevelEnabler) {
	cores := make([]zapcore.Core, 0, len(l.sinks))
	for _, s := range l.sinks {
		cores = append(cores, s.Build(preset, enab))
	}
	l.core.Store(coreBox{core: zapcore.NewTee(cores...)})
}

// Component returns a view of the logger that prefixes every message
// with "[name] ". The view shares the parent's sinks and level.
func (l *Logger) Component(name string) *Logger {
	if l == nil || name == "" {
		return l
	}
	return &Logger{
		name:      l.name,
		component: name,
		parent:    l,
		sinks:     l.sinks,
	}
}

// Trace logs at trace level.
func (l *Logger) Trace(template string, args ...any) codes.Code {
	return l.LogWithLocation(Here(1), TraceLevel, template, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(template string, args ...any) codes.Code {
	return l.LogWithLocation(Here(1), DebugLevel, template, args...)
}

// Info logs at info level.
func (l *Logger) Info(template string, args ...any) codes.Code {
	return l.LogWithLocation(Here(1), InfoLevel, template, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(template string, args ...any) codes.Code {
	return l.LogWithLocation(Here(1), WarnLevel, template, args...)
}

// Error logs at error level.
func (l *Logger) Error(template string, args ...any) codes.Code {
	return l.LogWithLocation(Here(1), ErrorLevel, template, args...)
}

// Critical logs at critical level.
func (l *Logger) Critical(template string, args ...any) codes.Code {
	return l.LogWithLocation(Here(1), CriticalLevel, template, args...)
}

// LogWithLocation validates, renders, and forwards a record to the
// engine. A record below the global minimum severity is silently
// accepted. Engine faults are recovered and reported as Unknown.
func (l *Logger) LogWithLocation(loc Location, level Level, template string, args ...any) (code codes.Code) {
	if l == nil {
		return codes.NotInitialized
	}
	core := l.loadCore()
	if core == nil {
		return codes.NotInitialized
	}
	if len(template) > MaxTemplateLen {
		return codes.InvalidParameter
	}
	defer func() {
		if r := recover(); r != nil {
			code = codes.Unknown
		}
	}()

	msg := template
	if len(args) > 0 {
		msg = fmt.Sprintf(template, args...)
	}
	if l.component != "" {
		msg = "[" + l.component + "] " + msg
	}

	ent := zapcore.Entry{
		Level:      level.zap(),
		Time:       time.Now(),
		LoggerName: l.name,
		Message:    msg,
		Caller: zapcore.EntryCaller{
			Defined:  loc.File != "",
			File:     loc.File,
			Line:     loc.Line,
			Function: loc.Function,
		},
	}
	if ce := core.Check(ent, nil); ce != nil {
		ce.Write()
	}
	return codes.OK
}

// Flush forces buffered records out to the sinks.
func (l *Logger) Flush() codes.Code {
	if l == nil {
		return codes.NotInitialized
	}
	core := l.loadCore()
	if core == nil {
		return codes.NotInitialized
	}
	if err := core.Sync(); err != nil {
		return codes.Unknown
	}
	return codes.OK
}
