// Package config loads shipcheck configuration from file, environment, and
// flags. Only run-level knobs live here; rule scopes, expected key lists,
// and exemption lists are static configuration baked into the rule registry.
package config

// Default configuration values.
const (
	DefaultOutput          = "auto"
	DefaultToolTimeoutSecs = 300
)

// Config holds the resolved run configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
type Config struct {
	// Root is the project root directory all artifact paths resolve
	// against. Defaults to the directory holding shipcheck.yaml, found by
	// upward search from the working directory.
	Root string `koanf:"root"`

	// OutputFormat selects the report rendering: auto, text, markdown, json.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`

	// ToolTimeoutSecs bounds each external tool invocation, in seconds.
	ToolTimeoutSecs int `koanf:"tool_timeout"`

	// SkipBuild omits the external-tool rules (type-check and bundler).
	SkipBuild bool `koanf:"skip_build"`

	// Disable lists rule IDs to skip. Disabling never reorders the
	// remaining rules.
	Disable []string `koanf:"disable"`
}
