package codes

// Code is the result of a vsnlogger operation.
type Code uint8

const (
	// OK means the operation completed successfully.
	OK Code = 0
	// InvalidParameter means one or more parameters were invalid.
	InvalidParameter Code = 1
	// ResourceUnavailable means a bounded resource (sections, entries,
	// sinks) is saturated or could not be accessed.
	ResourceUnavailable Code = 2
	// AllocationFailed means an allocation could not be satisfied.
	AllocationFailed Code = 3
	// PermissionDenied means the operation lacked permission.
	PermissionDenied Code = 4
	// PathCreationFailed means a directory path could not be created.
	PathCreationFailed Code = 5
	// NotInitialized means the component was used before initialization.
	NotInitialized Code = 6
	// ConfigError means configuration was present but unusable.
	ConfigError Code = 7
	// InvalidState means the operation is invalid in the current state.
	InvalidState Code = 8
	// FileError means a file operation failed.
	FileError Code = 9
	// Unknown covers unexpected failures recovered at a public boundary.
	Unknown Code = 255
)

// String returns the canonical name of the code.
func (c Code) String() string {
	switch c {
	case OK:
		return "SUCCESS"
	case InvalidParameter:
		return "INVALID_PARAMETER"
	case ResourceUnavailable:
		return "RESOURCE_UNAVAILABLE"
	case AllocationFailed:
		return "ALLOCATION_FAILED"
	case PermissionDenied:
		return "PERMISSION_DENIED"
	case PathCreationFailed:
		return "PATH_CREATION_FAILED"
	case NotInitialized:
		return "NOT_INITIALIZED"
	case ConfigError:
		return "CONFIG_ERROR"
	case InvalidState:
		return "INVALID_STATE"
	case FileError:
		return "FILE_ERROR"
	case Unknown:
		return "UNKNOWN_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error implements the error interface so codes compose with error
// plumbing. OK should not be treated as an error; use Err for that.
func (c Code) Error() string {
	return c.String()
}

// Err returns nil for OK and the code itself otherwise.
func (c Code) Err() error {
	if c == OK {
		return nil
	}
	return c
}
