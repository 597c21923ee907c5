package format

// Pattern preset names understood by Pattern. Unrecognized names
// resolve to PresetDefault.
const (
	PresetJSON     = "json"
	PresetConsole  = "console"
	PresetSimple   = "simple"
	PresetMinimal  = "minimal"
	PresetColored  = "colored"
	PresetDetailed = "detailed"
	PresetDefault  = "default"
)

// Pattern returns the rendering template for a named preset. Templates
// carry placeholders for timestamp (%Y..%f), level (%l), logger name
// (%n), thread id (%t), call site (%g:%#), and message (%v); the
// rendering engine interprets them.
func Pattern(name string) string {
	switch name {
	case PresetJSON:
		return `{"timestamp":"%Y-%m-%dT%H:%M:%S.%fZ","level":"%^%l%$","logger":"%n","thread":"%t","message":"%v"}`
	case PresetConsole:
		return "%Y-%m-%d %H:%M:%S.%f %z [%^%l%$] [%n] [%t] %v"
	case PresetSimple:
		return "[%Y-%m-%d %H:%M:%S.%f] [%^%l%$] %v"
	case PresetMinimal:
		return "%^%l%$ %v"
	case PresetColored:
		return "%Y-%m-%d %H:%M:%S.%f %z [%^%-8l%$] [%-10n] [%-5P %-5t] [%g:%#] %v"
	case PresetDetailed:
		return "%Y-%m-%d %H:%M:%S.%f %z [%^%-8l%$] [%-10n] [%-5P %-5t] [%g:%#:%!()] %v"
	default:
		return "%Y-%m-%d %H:%M:%S.%f %z [%^%l%$] [%n] [%t] %v"
	}
}
