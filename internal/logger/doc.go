// Package logger wraps zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and the WithLevel option for per-logger thresholds,
//   - convenience functions (Info, InfoKV, DebugKV, ...).
//
// Services take a context and pull the logger from it, so every record is
// tagged with the component that produced it.
package logger
