/*
Package session tracks the lifecycle of running portfolio sessions.

A Tracker holds one Record per active session. Every navigation or resize
reported through UpdateActivity / UpdateTerminalSize refreshes the record
and re-arms its idle timer; when the timer fires without intervening
activity the session ends with ReasonTimeout.

Sessions end exactly once, through EndSession, the idle timer, capacity
eviction or Shutdown. The ended event carries the final record, the reason
and the duration, and is emitted before the record is dropped.

# Events

Subscribers receive created, activity, ended and shutdown events. Dispatch
is serial and in emission order, and happens outside the tracker lock.
A handler may call back into the Tracker; events raised that way are queued
and delivered after it returns. A handler that blocks delays delivery but
never the Tracker's other callers. Forward to a channel to stay prompt:

	events := make(chan session.Event, 16)
	unsubscribe := tracker.Subscribe(func(ev session.Event) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

# Default tracker

Default returns a lazily created process-wide tracker for simple hosts.
Hosts with their own options build one with New and pass it explicitly.
*/
package session
