// Package integration runs the demo and script services end to end from
// configuration files on disk.
package integration
