package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/studiowebux/termfolio/internal/portfolio"
)

const (
	// DefaultIdleTimeout ends a session after this long without activity
	DefaultIdleTimeout = 30 * time.Minute

	// DefaultMaxSessions bounds the number of concurrently active sessions
	DefaultMaxSessions = 1000

	// evictFraction of the active sessions is reclaimed when capacity is reached
	evictFraction = 0.10

	// topSections is the length of Stats.MostVisitedSections
	topSections = 5
)

// Options configures a Tracker. Zero values select the defaults.
type Options struct {
	IdleTimeout time.Duration
	MaxSessions int
	Logger      *slog.Logger
	Now         func() time.Time
}

type entry struct {
	record Record
	timer  *time.Timer
	gen    uint64 // bumped on every re-arm so stale timer callbacks are ignored
}

// Tracker owns the lifecycle records of running sessions
type Tracker struct {
	idleTimeout time.Duration
	maxSessions int
	logger      *slog.Logger
	now         func() time.Time
	entropy     io.Reader

	mu            sync.Mutex
	sessions      map[string]*entry
	shuttingDown  bool
	shutdownDone  chan struct{}
	totalSessions int
	endedSessions int
	endedDuration time.Duration
	sectionVisits map[portfolio.Section]int
	subs          []subscription
	nextSubID     int

	// timers counts armed idle timers whose callback may still run
	timers sync.WaitGroup

	// queue holds events not yet delivered; dispatching is set while one
	// goroutine drains it
	queue       []queuedEvent
	dispatching bool
}

// New creates a tracker
func New(opts Options) *Tracker {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Tracker{
		idleTimeout:   opts.IdleTimeout,
		maxSessions:   opts.MaxSessions,
		logger:        opts.Logger,
		now:           opts.Now,
		entropy:       ulid.Monotonic(rand.Reader, 0),
		sessions:      make(map[string]*entry),
		shutdownDone:  make(chan struct{}),
		sectionVisits: make(map[portfolio.Section]int),
	}
}

// IdleTimeout returns the configured idle timeout
func (t *Tracker) IdleTimeout() time.Duration {
	return t.idleTimeout
}

// Subscribe registers a handler for every future event and returns a
// function that removes it
func (t *Tracker) Subscribe(h EventHandler) (unsubscribe func()) {
	t.mu.Lock()
	t.nextSubID++
	id := t.nextSubID
	t.subs = append(t.subs, subscription{id: id, handler: h})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// CreateSession starts tracking a new session. An empty explicitID generates
// a ULID. When the tracker is full, the least recently active tenth of the
// sessions is ended with ReasonTimeout to make room.
func (t *Tracker) CreateSession(explicitID string) (string, error) {
	t.mu.Lock()
	if t.shuttingDown {
		t.mu.Unlock()
		return "", ErrShuttingDown
	}

	now := t.now()
	id := explicitID
	if id == "" {
		id = ulid.MustNew(ulid.Timestamp(now), t.entropy).String()
	}
	if _, exists := t.sessions[id]; exists {
		t.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrSessionExists, id)
	}

	var pending []Event
	if len(t.sessions) >= t.maxSessions {
		pending = t.evictLocked()
	}
	if len(t.sessions) >= t.maxSessions {
		t.unlockAndDispatch(pending)
		return "", ErrCapacity
	}

	e := &entry{
		record: Record{
			ID:           id,
			StartTime:    now,
			LastActivity: now,
		},
	}
	t.sessions[id] = e
	t.totalSessions++
	t.armLocked(e)

	t.logger.Info("session created", "session", id, "active", len(t.sessions))
	pending = append(pending, Event{Kind: EventCreated, Time: now, Session: e.record.clone()})
	t.unlockAndDispatch(pending)
	return id, nil
}

// UpdateActivity marks the session active and records a first visit to
// section. An empty section only refreshes activity. Unknown ids are logged
// and ignored.
func (t *Tracker) UpdateActivity(id string, section portfolio.Section) {
	t.mu.Lock()
	e, ok := t.sessions[id]
	if !ok {
		t.mu.Unlock()
		t.logger.Warn("activity for unknown session", "session", id)
		return
	}

	t.touchLocked(e, section)
	t.unlockAndDispatch([]Event{{Kind: EventActivity, Time: e.record.LastActivity, Session: e.record.clone()}})
}

// UpdateTerminalSize stores the terminal size; it counts as activity
func (t *Tracker) UpdateTerminalSize(id string, size TerminalSize) {
	t.mu.Lock()
	e, ok := t.sessions[id]
	if !ok {
		t.mu.Unlock()
		t.logger.Warn("terminal size for unknown session", "session", id)
		return
	}

	e.record.TerminalSize = &size
	t.touchLocked(e, "")
	t.unlockAndDispatch([]Event{{Kind: EventActivity, Time: e.record.LastActivity, Session: e.record.clone()}})
}

// EndSession ends an active session. Ending an unknown or already ended
// session is a no-op.
func (t *Tracker) EndSession(id string, reason EndReason) {
	t.mu.Lock()
	e, ok := t.sessions[id]
	if !ok {
		t.mu.Unlock()
		t.logger.Debug("end for inactive session", "session", id, "reason", reason)
		return
	}

	ev := t.endLocked(e, reason)
	t.unlockAndDispatch([]Event{ev})
}

// GetSession returns a copy of an active session's record
func (t *Tracker) GetSession(id string) (Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.sessions[id]
	if !ok {
		return Record{}, false
	}
	return e.record.clone(), true
}

// Shutdown ends every active session with ReasonShutdown, stops all idle
// timers and waits until no timer callback is running. Further calls to
// CreateSession fail with ErrShuttingDown. Calling Shutdown again waits for
// the first call to finish and returns nil.
func (t *Tracker) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	if t.shuttingDown {
		done := t.shutdownDone
		t.mu.Unlock()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	t.shuttingDown = true

	var pending []Event
	for _, e := range t.sortedLocked(byStart) {
		pending = append(pending, t.endLocked(e, ReasonShutdown))
	}
	t.logger.Info("session tracker shutting down", "ended", len(pending))
	t.unlockAndDispatch(pending)

	var err error
	idle := make(chan struct{})
	go func() {
		t.timers.Wait()
		close(idle)
	}()
	select {
	case <-idle:
	case <-ctx.Done():
		err = ctx.Err()
		t.logger.Warn("shutdown finished before idle timers drained", "error", err)
	}

	t.mu.Lock()
	t.unlockAndDispatch([]Event{{Kind: EventShutdown, Time: t.now()}})
	close(t.shutdownDone)
	return err
}

// ShuttingDown reports whether Shutdown has been called
func (t *Tracker) ShuttingDown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shuttingDown
}

func (t *Tracker) touchLocked(e *entry, section portfolio.Section) {
	now := t.now()
	if now.Before(e.record.LastActivity) {
		now = e.record.LastActivity
	}
	e.record.LastActivity = now

	if section != "" {
		switch {
		case !section.Valid():
			t.logger.Warn("activity for unknown section", "session", e.record.ID, "section", section)
		case !e.record.Visited(section):
			e.record.SectionsVisited = append(e.record.SectionsVisited, section)
			t.sectionVisits[section]++
		}
	}

	t.armLocked(e)
}

func (t *Tracker) endLocked(e *entry, reason EndReason) Event {
	t.disarmLocked(e)

	end := t.now()
	if end.Before(e.record.LastActivity) {
		end = e.record.LastActivity
	}
	e.record.EndTime = end
	duration := e.record.Duration()

	delete(t.sessions, e.record.ID)
	t.endedSessions++
	t.endedDuration += duration

	t.logger.Info("session ended",
		"session", e.record.ID,
		"reason", reason,
		"duration", duration,
		"sections", len(e.record.SectionsVisited),
	)

	return Event{
		Kind:     EventEnded,
		Time:     end,
		Session:  e.record.clone(),
		Reason:   reason,
		Duration: duration,
	}
}

// evictLocked ends the least recently active tenth of the sessions, at least one
func (t *Tracker) evictLocked() []Event {
	n := int(math.Ceil(float64(len(t.sessions)) * evictFraction))
	if n < 1 {
		n = 1
	}

	victims := t.sortedLocked(byLastActivity)
	if n > len(victims) {
		n = len(victims)
	}

	t.logger.Warn("session capacity reached, evicting idle sessions", "max", t.maxSessions, "evicting", n)
	events := make([]Event, 0, n)
	for _, e := range victims[:n] {
		events = append(events, t.endLocked(e, ReasonTimeout))
	}
	return events
}

func (t *Tracker) armLocked(e *entry) {
	t.disarmLocked(e)

	e.gen++
	id, gen := e.record.ID, e.gen
	t.timers.Add(1)
	e.timer = time.AfterFunc(t.idleTimeout, func() {
		defer t.timers.Done()
		t.expire(id, gen)
	})
}

func (t *Tracker) disarmLocked(e *entry) {
	if e.timer == nil {
		return
	}
	// A false Stop means the callback already started; it calls Done itself.
	if e.timer.Stop() {
		t.timers.Done()
	}
	e.timer = nil
}

func (t *Tracker) expire(id string, gen uint64) {
	t.mu.Lock()
	e, ok := t.sessions[id]
	if !ok || e.gen != gen {
		t.mu.Unlock()
		return
	}

	e.timer = nil
	ev := t.endLocked(e, ReasonTimeout)
	t.unlockAndDispatch([]Event{ev})
}

type sortKey int

const (
	byStart sortKey = iota
	byLastActivity
)

func (t *Tracker) sortedLocked(key sortKey) []*entry {
	out := make([]*entry, 0, len(t.sessions))
	for _, e := range t.sessions {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].record, out[j].record
		if key == byLastActivity && !a.LastActivity.Equal(b.LastActivity) {
			return a.LastActivity.Before(b.LastActivity)
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})
	return out
}

// queuedEvent is an event and the subscribers registered when it was emitted
type queuedEvent struct {
	event    Event
	handlers []EventHandler
}

// unlockAndDispatch queues events for the subscribers registered while mu is
// held, releases mu and drains the queue unless another goroutine is already
// draining it. Handlers run serially in emission order with no lock held, so
// a handler that blocks or calls back into the Tracker stalls only delivery.
func (t *Tracker) unlockAndDispatch(events []Event) {
	if len(events) > 0 && len(t.subs) > 0 {
		handlers := make([]EventHandler, len(t.subs))
		for i, s := range t.subs {
			handlers[i] = s.handler
		}
		for _, ev := range events {
			t.queue = append(t.queue, queuedEvent{event: ev, handlers: handlers})
		}
	}

	if t.dispatching || len(t.queue) == 0 {
		t.mu.Unlock()
		return
	}
	t.dispatching = true

	for {
		batch := t.queue
		t.queue = nil
		t.mu.Unlock()

		for _, q := range batch {
			for _, h := range q.handlers {
				t.deliver(h, q.event)
			}
		}

		t.mu.Lock()
		if len(t.queue) == 0 {
			t.dispatching = false
			t.mu.Unlock()
			return
		}
	}
}

func (t *Tracker) deliver(h EventHandler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("session event handler panicked", "event", ev.Kind, "panic", r)
		}
	}()
	h(ev)
}
