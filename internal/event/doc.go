// Package event carries the reported-event abstraction of the demo.
//
// Domain components never print. They report an Event through a Reporter,
// and a Bus fans it out to sinks: a Recorder for tests, a LogSink for zap,
// and the transcript renderers used by the CLI.
package event
