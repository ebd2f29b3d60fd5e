package session

import (
	"time"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

// EndReason records why a session ended
type EndReason string

const (
	ReasonExit     EndReason = "exit"
	ReasonTimeout  EndReason = "timeout"
	ReasonShutdown EndReason = "shutdown"
	ReasonError    EndReason = "error"
)

// TerminalSize is the last reported terminal size
type TerminalSize struct {
	Width  int
	Height int
}

// Record is the lifecycle record of one running instance.
// Values returned by the tracker are copies.
type Record struct {
	ID              string
	StartTime       time.Time
	LastActivity    time.Time
	EndTime         time.Time // zero while the session is active
	SectionsVisited []portfolio.Section
	TerminalSize    *TerminalSize // nil until the first report
}

// Ended reports whether EndTime has been set
func (r Record) Ended() bool {
	return !r.EndTime.IsZero()
}

// Duration is EndTime-StartTime for ended sessions, zero otherwise
func (r Record) Duration() time.Duration {
	if !r.Ended() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// Visited reports whether s is in SectionsVisited
func (r Record) Visited(s portfolio.Section) bool {
	for _, v := range r.SectionsVisited {
		if v == s {
			return true
		}
	}
	return false
}

func (r Record) clone() Record {
	out := r
	out.SectionsVisited = append([]portfolio.Section(nil), r.SectionsVisited...)
	if r.TerminalSize != nil {
		size := *r.TerminalSize
		out.TerminalSize = &size
	}
	return out
}
