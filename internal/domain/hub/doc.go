// Package hub implements the Mediator: a registry that routes named
// commands to named devices so callers never hold a device directly.
package hub
