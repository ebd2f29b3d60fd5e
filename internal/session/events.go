package session

import "time"

// EventKind identifies a lifecycle notification
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventActivity EventKind = "activity"
	EventEnded    EventKind = "ended"
	EventShutdown EventKind = "shutdown"
)

// Event is delivered to subscribers. Session is a snapshot taken when the
// event was emitted; it is empty for EventShutdown.
type Event struct {
	Kind     EventKind
	Time     time.Time
	Session  Record
	Reason   EndReason     // EventEnded only
	Duration time.Duration // EventEnded only
}

// EventHandler receives tracker events. Handlers run serially in emission
// order. A handler may call back into the Tracker; the events that causes
// are delivered after the handler returns. A blocking handler delays every
// later event, so forward to a channel instead.
type EventHandler func(Event)

type subscription struct {
	id      int
	handler EventHandler
}
