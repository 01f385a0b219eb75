package rrule

import "github.com/rs/zerolog"

// Logger receives diagnostic events from an Iterator. It is never invoked
// on the hot Next() path; only on year rebuilds and safety-cap hits,
// where a handful of calls per iteration lifetime cost nothing.
// Grounded on the optional-logger shape used throughout the jpfluger
// atime packages, backed here by zerolog instead of the stdlib logger.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
}

// noopLogger discards every event; it is the default when no Logger is
// supplied to NewIterator.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	Log zerolog.Logger
}

func (l ZerologLogger) Debug(msg string, fields map[string]interface{}) {
	ev := l.Log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
