package canvas

import "time"

// HistoryLogEvent describes one history operation for logging.
type HistoryLogEvent struct {
	Verb     string
	ActionID string
	Duration time.Duration
	Dropped  bool
}

// HistoryLogger records undo/redo/replay operations.
type HistoryLogger interface {
	LogHistory(HistoryLogEvent)
}

// HistoryLoggerFunc adapts a function to HistoryLogger.
type HistoryLoggerFunc func(HistoryLogEvent)

// LogHistory implements HistoryLogger.
func (f HistoryLoggerFunc) LogHistory(event HistoryLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopHistoryLogger struct{}

func (noopHistoryLogger) LogHistory(HistoryLogEvent) {}
