// Package codes defines the result codes returned by vsnlogger
// operations. Every public operation reports its outcome as a Code
// instead of panicking; OK means success and everything else names the
// failure class.
//
// Example:
//
//	if c := logger.Info("started"); c != codes.OK {
//	    fmt.Fprintln(os.Stderr, "log failed:", c)
//	}
package codes
