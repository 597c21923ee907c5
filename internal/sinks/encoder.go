package sinks

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/vsnam19/vsnlogger/internal/format"
)

// TraceLevel extends zapcore's range below debug. Entries at this
// level render as "trace".
const TraceLevel = zapcore.DebugLevel - 1

// CriticalLevel is the highest severity. zapcore's fatal slot is
// reused for the name only; writing through a core never exits.
const CriticalLevel = zapcore.FatalLevel

// Fixed severity colors applied to the first console sink when colors
// are enabled.
const (
	colorTrace    = "\033[36m"
	colorDebug    = "\033[92m"
	colorInfo     = "\033[97m"
	colorWarn     = "\033[93m"
	colorError    = "\033[91m"
	colorCritical = "\033[97;41m"
	colorReset    = "\033[0m"
)

// LevelName maps an engine level to its vsnlogger name.
func LevelName(l zapcore.Level) string {
	switch {
	case l <= TraceLevel:
		return "trace"
	case l == zapcore.DebugLevel:
		return "debug"
	case l == zapcore.InfoLevel:
		return "info"
	case l == zapcore.WarnLevel:
		return "warn"
	case l == zapcore.ErrorLevel:
		return "error"
	default:
		return "critical"
	}
}

func levelColor(l zapcore.Level) string {
	switch {
	case l <= TraceLevel:
		return colorTrace
	case l == zapcore.DebugLevel:
		return colorDebug
	case l == zapcore.InfoLevel:
		return colorInfo
	case l == zapcore.WarnLevel:
		return colorWarn
	case l == zapcore.ErrorLevel:
		return colorError
	default:
		return colorCritical
	}
}

func plainLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(LevelName(l))
}

func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelColor(l) + LevelName(l) + colorReset)
}

func isoTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}

// EncoderFor maps a pattern preset onto an engine encoder. The json
// preset selects the JSON encoder; every other preset selects a
// console encoder whose field set matches the preset's template.
func EncoderFor(preset string, colored bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		CallerKey:      "caller",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     isoTimeEncoder,
		EncodeLevel:    plainLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if colored {
		cfg.EncodeLevel = coloredLevelEncoder
	}

	switch preset {
	case format.PresetJSON:
		cfg.EncodeLevel = plainLevelEncoder // no escape codes inside JSON
		return zapcore.NewJSONEncoder(cfg)
	case format.PresetMinimal:
		cfg.TimeKey = ""
		cfg.NameKey = ""
		cfg.CallerKey = ""
	case format.PresetSimple:
		cfg.NameKey = ""
		cfg.CallerKey = ""
	case format.PresetConsole, format.PresetDefault:
		cfg.CallerKey = ""
	case format.PresetDetailed:
		cfg.FunctionKey = "func"
	case format.PresetColored:
		// full field set
	default:
		cfg.CallerKey = ""
	}
	return zapcore.NewConsoleEncoder(cfg)
}
