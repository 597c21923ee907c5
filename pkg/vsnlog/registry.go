package vsnlog

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vsnam19/vsnlogger/internal/config"
	"github.com/vsnam19/vsnlogger/internal/format"
	"github.com/vsnam19/vsnlogger/internal/sinks"
	"github.com/vsnam19/vsnlogger/pkg/codes"
)

// MaxLogFilePath bounds the computed log file path.
const MaxLogFilePath = 255

// Registry owns named loggers, the configuration store they are
// assembled from, and the process defaults (pattern, minimum level,
// default logger). It replaces hidden global state: callers construct
// one and thread it, or hold the Logger tokens it returns.
type Registry struct {
	mu      sync.Mutex
	store   *config.Store
	loggers map[string]*Logger
	def     *Logger
	level   zap.AtomicLevel
	pattern string
}

// NewRegistry returns an empty registry at info level with the default
// pattern.
func NewRegistry() *Registry {
	return &Registry{
		store:   config.NewStore(),
		loggers: make(map[string]*Logger),
		level:   zap.NewAtomicLevelAt(zapcore.InfoLevel),
		pattern: format.PresetDefault,
	}
}

// Store exposes the registry's configuration store for loading and
// overrides.
func (r *Registry) Store() *config.Store { return r.store }

// Initialize resolves configuration for appName, assembles the implied
// sink set, registers (or reuses) the logger, and makes it the
// default. The returned logger is valid whenever the code is OK.
func (r *Registry) Initialize(appName, logDir string, level Level) (*Logger, codes.Code) {
	if appName == "" || logDir == "" {
		return nil, codes.InvalidParameter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Environment overrides are picked up on every initialization;
	// a missing environment is not an error.
	_ = r.store.LoadFromEnv()

	logDir = r.store.GetString(appName, "log_dir", logDir)
	useConsole := r.store.GetBool(appName, "console_output", true)
	useFile := r.store.GetBool(appName, "file_output", true)
	useSyslog := r.store.GetBool(appName, "syslog_output", false)
	patternName := r.store.GetString(appName, "log_pattern", format.PresetColored)
	useColors := r.store.GetBool(appName, "use_colors", true)
	maxSize := r.store.GetInt(appName, "max_file_size", sinks.DefaultMaxFileSize)
	maxFiles := r.store.GetInt(appName, "max_files", sinks.DefaultMaxFiles)
	resolved := resolveLevel(r.store.GetString(appName, "log_level", ""), level)

	var filePath string
	if useFile {
		filePath = filepath.Join(logDir, appName, appName+".log")
		if len(filePath) > MaxLogFilePath {
			return nil, codes.InvalidParameter
		}
	}

	logger, ok := r.loggers[appName]
	if !ok {
		var ss []*sinks.Sink
		if useConsole {
			if s, c := sinks.NewConsole(useColors); c == codes.OK {
				ss = append(ss, s)
			}
		}
		if useFile {
			if s, c := sinks.NewFile(filePath, true, maxSize, maxFiles); c == codes.OK {
				ss = append(ss, s)
			}
		}
		if useSyslog {
			if s, c := sinks.NewSyslog("", 0, 0, true); c == codes.OK {
				ss = append(ss, s)
			}
		}
		if len(ss) == 0 {
			s, c := sinks.NewConsole(useColors)
			if c != codes.OK {
				return nil, c
			}
			ss = append(ss, s)
		}
		// Only three kinds exist today; the cap holds if more are added.
		if len(ss) > sinks.MaxPerLogger {
			for _, s := range ss[sinks.MaxPerLogger:] {
				_ = s.Release()
			}
			ss = ss[:sinks.MaxPerLogger]
		}
		logger = &Logger{name: appName, sinks: ss}
		r.loggers[appName] = logger
	}

	r.pattern = patternName
	r.level.SetLevel(resolved.zap())
	r.rebuildLocked()
	r.def = logger

	logger.Info("logging initialized for application: %s", appName)
	return logger, codes.OK
}

// InitializeWithConfig loads file then environment configuration
// (environment wins) and initializes from the resolved global
// settings. A config file that cannot be loaded degrades to a warning
// on the new logger; it never aborts initialization.
func (r *Registry) InitializeWithConfig(appName, configFile string) (*Logger, codes.Code) {
	if appName == "" {
		return nil, codes.InvalidParameter
	}
	fileCode := r.store.LoadFromFile(configFile)
	_ = r.store.LoadFromEnv()

	logDir := r.store.GetString(config.GlobalSection, "log_dir", "/var/log")
	level := resolveLevel(r.store.GetString(config.GlobalSection, "log_level", ""), InfoLevel)

	logger, c := r.Initialize(appName, logDir, level)
	if c == codes.OK && fileCode != codes.OK {
		logger.Warn("config file %q not loaded: %s", configFile, fileCode)
	}
	return logger, c
}

// NewNamed registers a console+file logger under name, outside the
// Initialize flow. An existing logger with that name is reused.
func (r *Registry) NewNamed(name, filePath string) (*Logger, codes.Code) {
	if name == "" {
		return nil, codes.InvalidParameter
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, codes.OK
	}
	ss, c := sinks.NewMulti(true, filePath, false)
	if c != codes.OK {
		return nil, c
	}
	l := &Logger{name: name, sinks: ss}
	l.rebuild(r.pattern, r.level)
	r.loggers[name] = l
	return l, codes.OK
}

// Lookup returns the logger registered under name, if any.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Default returns the default logger, lazily constructing a
// console-only "default" logger when nothing was initialized. When
// even that fails, a last-resort stderr logger is returned; Default
// never returns nil.
func (r *Registry) Default() *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.def != nil {
		return r.def
	}
	if s, c := sinks.NewConsole(true); c == codes.OK {
		l := &Logger{name: "default", sinks: []*sinks.Sink{s}}
		l.rebuild(r.pattern, r.level)
		r.loggers["default"] = l
		r.def = l
		l.Warn("using uninitialized default logger; call Initialize first")
		return l
	}
	return r.emergencyLogger()
}

// emergencyLogger writes straight to stderr, bypassing the sink
// allocation counter: it exists for the case where the counter itself
// is saturated.
func (r *Registry) emergencyLogger() *Logger {
	l := &Logger{name: "emergency"}
	core := zapcore.NewCore(
		sinks.EncoderFor(format.PresetDefault, false),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		r.level,
	)
	l.core.Store(coreBox{core: core})
	r.def = l
	return l
}

// SetPattern applies a pattern preset to every registered logger.
// Unrecognized names fall back to the default preset.
func (r *Registry) SetPattern(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pattern = name
	r.rebuildLocked()
}

// Pattern reports the active pattern preset.
func (r *Registry) Pattern() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pattern
}

// SetLevel applies a global minimum severity across all loggers.
func (r *Registry) SetLevel(level Level) {
	r.level.SetLevel(level.zap())
}

// Flush forwards a flush to the default logger.
func (r *Registry) Flush() codes.Code {
	r.mu.Lock()
	def := r.def
	r.mu.Unlock()
	if def == nil {
		return codes.NotInitialized
	}
	return def.Flush()
}

// Shutdown flushes and tears down every registered logger, releases
// their sinks, and clears the default handle.
func (r *Registry) Shutdown() codes.Code {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for name, l := range r.loggers {
		if core := l.loadCore(); core != nil {
			_ = core.Sync()
		}
		for _, s := range l.sinks {
			err = multierr.Append(err, s.Release())
		}
		l.core.Store(coreBox{})
		delete(r.loggers, name)
	}
	r.def = nil
	if err != nil {
		return codes.Unknown
	}
	return codes.OK
}

// rebuildLocked re-tees every registered logger's sinks under the
// current pattern and level gate. Caller holds r.mu.
func (r *Registry) rebuildLocked() {
	for _, l := range r.loggers {
		l.rebuild(r.pattern, r.level)
	}
}
