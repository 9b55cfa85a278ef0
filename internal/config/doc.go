// Package config loads the script runner configuration.
//
// Values are layered: built-in defaults, then an optional YAML or TOML file,
// then TURTLE_* environment variables. The result is validated before use.
package config
