// Package vsnlog provides the configuration-driven logging facade: a
// caller-owned Registry that assembles named loggers from layered
// configuration, and Logger handles exposing leveled calls with
// call-site metadata and explicit result codes.
//
// Example:
//
//	reg := vsnlog.NewRegistry()
//	logger, c := reg.Initialize("app_a", "/var/log", vsnlog.InfoLevel)
//	if c != codes.OK {
//	    logger = reg.Default()
//	}
//	logger.Info("application starting, pid %d", os.Getpid())
//	defer reg.Shutdown()
//
// Configuration is resolved per application section with fallback to
// the global section, then to the caller's arguments; see the config
// package for the file and environment formats.
package vsnlog
