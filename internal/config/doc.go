// Package config provides the bounded, layered configuration store that
// drives logger assembly. Values come from an INI-style file, a fixed
// set of VSNLOG_* environment variables, and call-supplied defaults;
// lookups in a named section fall back to the reserved "global" section.
//
// Example:
//
//	store := config.NewStore()
//	_ = store.LoadFromFile("/etc/vsnlogger.conf")
//	_ = store.LoadFromEnv()
//	level := store.GetString("app_a", "log_level", "info")
package config
