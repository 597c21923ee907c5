// Package sinks builds output destinations for the logging engine from
// boolean/string configuration. Each sink wraps a zapcore core:
// console (optionally colored), file (single or rotating via
// lumberjack), syslog, or null. A process-wide allocation counter caps
// the number of live sinks; once saturated, constructors return no sink
// instead of blocking.
//
// Example:
//
//	sink, c := sinks.NewFile("/var/log/app/app.log", true, 0, 0)
//	if c != codes.OK {
//	    // fall back or report
//	}
//	defer sink.Release()
package sinks
