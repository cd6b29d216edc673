package event

import "go.uber.org/zap"

// LogSink writes events to a zap logger at debug level.
type LogSink struct {
	// log receives one record per event.
	log *zap.SugaredLogger
}

// NewLogSink creates a sink backed by the given logger.
func NewLogSink(log *zap.SugaredLogger) *LogSink {
	return &LogSink{log: log}
}

// Emit implements Sink.
func (s *LogSink) Emit(e Event) {
	s.log.Debugw(e.Message,
		"id", e.ID.String(),
		"kind", string(e.Kind),
		"source", e.Source,
	)
}
