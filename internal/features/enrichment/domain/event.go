package domain

// EventKind distinguishes the signals a sync run emits.
type EventKind string

const (
	EventProgress EventKind = "progress"
	EventResult   EventKind = "result"
	EventError    EventKind = "error"
)

// Event is one signal from a running sync.
type Event struct {
	Kind EventKind `json:"kind"`
	// Progress is the percentage of rows visited, 0 to 100. Set for progress events.
	Progress int `json:"progress,omitempty"`
	// Message is a human-readable summary or error description.
	Message string `json:"message,omitempty"`
	// Err carries the sentinel-wrapped cause of an error event.
	Err error `json:"-"`
}

// ProgressEvent reports the percentage of rows visited.
func ProgressEvent(pct int) Event {
	return Event{Kind: EventProgress, Progress: pct}
}

// ResultEvent reports the completion summary of a run.
func ResultEvent(msg string) Event {
	return Event{Kind: EventResult, Message: msg}
}

// ErrorEvent reports a row, batch or run failure.
func ErrorEvent(err error) Event {
	return Event{Kind: EventError, Message: err.Error(), Err: err}
}
