package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/studiowebux/termfolio/internal/session"
)

// PrintSummary writes the tracker stats shown by --summary on exit
func (u *UI) PrintSummary(s session.Stats) error {
	visited := make([]string, 0, len(s.MostVisitedSections))
	for _, sc := range s.MostVisitedSections {
		visited = append(visited, fmt.Sprintf("%s (%d)", sc.Section.Label(), sc.Count))
	}

	return u.renderTable([]string{"Stat", "Value"}, [][]string{
		{"sessions", fmt.Sprintf("%d", s.TotalSessions)},
		{"active", fmt.Sprintf("%d", s.ActiveSessions)},
		{"ended", fmt.Sprintf("%d", s.EndedSessions)},
		{"average duration", s.AverageSessionDuration.Round(time.Second).String()},
		{"most visited", orDefault(strings.Join(visited, ", "), "-")},
	})
}
