// Package config loads and merges the application configuration for
// both the relay server and the device agent from environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults. Sources are merged in priority order with mergo; the first
// non-zero value for a field wins.
package config
