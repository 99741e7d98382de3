// Package cli implements the eulerpath command-line interface.
//
// The command tree is built with cobra:
//   - solve: load an edge-list file and print its Eulerian cycle or path
//   - classify: print the degree-parity class and component count
//   - generate: write a fixture graph in the edge-list format
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log. The level comes from
// the config file (log_level) and --verbose (-v) forces debug, which also
// logs every sub-circuit and merge of the engine. Loggers are passed through
// context.Context.
//
// # Configuration
//
// An optional TOML file is read from --config or, by default, from
// $XDG_CONFIG_HOME/eulerpath/config.toml:
//
//	log_level = "info"
//
//	[solve]
//	defer_start = true
//	verify = false
//	separator = " "
//	format = "text"
//
// Command-line flags override file values.
package cli

const (
	// appName is the application name used for directories and display.
	appName = "eulerpath"

	// configFileName is the file looked up under the XDG config directory.
	configFileName = "config.toml"
)
