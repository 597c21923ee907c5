package sinks

import (
	"log/syslog"

	"go.uber.org/zap/zapcore"
)

// syslogWriter is the subset of *syslog.Writer the sink needs; tests
// substitute their own.
type syslogWriter interface {
	Debug(m string) error
	Info(m string) error
	Warning(m string) error
	Err(m string) error
	Crit(m string) error
	Close() error
}

// Hook for tests.
var dialSyslog = func(facility int, ident string) (syslogWriter, error) {
	return syslog.New(syslog.Priority(facility<<3)|syslog.LOG_INFO, ident)
}

// syslogCore routes engine entries to the syslog daemon. The daemon
// stamps time and ident itself, so only the message body (optionally
// prefixed with level and logger name) is sent.
type syslogCore struct {
	zapcore.LevelEnabler
	sink *Sink
}

func (c *syslogCore) With([]zapcore.Field) zapcore.Core { return c }

func (c *syslogCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *syslogCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	msg := ent.Message
	if c.sink.formatting {
		msg = "[" + LevelName(ent.Level) + "] [" + ent.LoggerName + "] " + msg
	}
	switch {
	case ent.Level <= zapcore.DebugLevel:
		return c.sink.sl.Debug(msg)
	case ent.Level == zapcore.InfoLevel:
		return c.sink.sl.Info(msg)
	case ent.Level == zapcore.WarnLevel:
		return c.sink.sl.Warning(msg)
	case ent.Level == zapcore.ErrorLevel:
		return c.sink.sl.Err(msg)
	default:
		return c.sink.sl.Crit(msg)
	}
}

func (c *syslogCore) Sync() error { return nil }
