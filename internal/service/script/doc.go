// Package script runs a Starlark scenario against a home.
//
// The script drives the household through builtins such as turn_on, undo,
// alert and say; print() output joins the transcript as script events.
package script
