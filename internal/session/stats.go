package session

import (
	"sort"
	"time"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

// SectionCount is the number of distinct sessions that visited a section
type SectionCount struct {
	Section portfolio.Section
	Count   int
}

// Stats summarises the tracker since the process started
type Stats struct {
	ActiveSessions int
	TotalSessions  int
	EndedSessions  int
	// AverageSessionDuration covers ended sessions only
	AverageSessionDuration time.Duration
	// MostVisitedSections holds at most five entries, highest count first
	MostVisitedSections []SectionCount
}

// AverageSessionDurationSeconds is AverageSessionDuration in seconds
func (s Stats) AverageSessionDurationSeconds() float64 {
	return s.AverageSessionDuration.Seconds()
}

// Stats returns a snapshot of the tracker counters
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Stats{
		ActiveSessions: len(t.sessions),
		TotalSessions:  t.totalSessions,
		EndedSessions:  t.endedSessions,
	}
	if t.endedSessions > 0 {
		s.AverageSessionDuration = t.endedDuration / time.Duration(t.endedSessions)
	}

	// Walk the catalog so ties keep catalog order after the stable sort
	for _, sec := range portfolio.Sections() {
		if n := t.sectionVisits[sec]; n > 0 {
			s.MostVisitedSections = append(s.MostVisitedSections, SectionCount{Section: sec, Count: n})
		}
	}
	sort.SliceStable(s.MostVisitedSections, func(i, j int) bool {
		return s.MostVisitedSections[i].Count > s.MostVisitedSections[j].Count
	})
	if len(s.MostVisitedSections) > topSections {
		s.MostVisitedSections = s.MostVisitedSections[:topSections]
	}

	return s
}
