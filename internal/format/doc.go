// Package format maps pattern presets to rendering templates and
// produces JSON, syslog, and console representations of a log record.
// It decides what a rendered record looks like; writing the bytes
// anywhere is the sink layer's job.
//
// Example:
//
//	line, c := format.JSON("disk low", "warn", "storage", nil)
//	if c == codes.OK {
//	    fmt.Println(line)
//	}
package format
