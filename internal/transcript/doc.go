// Package transcript renders events for the console.
//
// Text prints the message of every event, one per line, with a blank line
// between sections. JSON prints one protojson-encoded object per event.
// Write errors are kept and returned by Err so sinks stay fire-and-forget.
package transcript
