// Package interpreter turns free-text phrases into device status changes
// by keyword matching.
package interpreter
