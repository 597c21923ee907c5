package vsnlog

import (
	"path/filepath"
	"runtime"
)

// Location is call-site metadata attached to a log record. Callers
// normally never build one by hand; the leveled methods capture it.
type Location struct {
	File     string
	Line     int
	Function string
}

// Here captures the caller's location. skip counts stack frames above
// the caller of Here, as in runtime.Caller.
func Here(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}
