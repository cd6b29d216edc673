// Package config defines the smart-home demo settings and provides helpers to
// load, validate and save them in YAML format.
//
// A missing file is not an error for the CLI: Default returns the settings the
// built-in demonstration uses.
package config
