package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/termfolio/internal/session"
)

type sessionEventMsg struct {
	event session.Event
}

// forwardEvent runs on the tracker's dispatch goroutine. It must not block,
// so events are dropped when the program is not keeping up; only ended
// and shutdown events matter to the program.
func (m *Model) forwardEvent(ev session.Event) {
	if ev.Kind != session.EventEnded && ev.Kind != session.EventShutdown {
		return
	}
	select {
	case m.events <- ev:
	default:
	}
}

// waitForSessionEvent returns a Cmd that waits for the next tracker event
func (m *Model) waitForSessionEvent() tea.Cmd {
	events, done := m.events, m.done
	return func() tea.Msg {
		select {
		case ev := <-events:
			return sessionEventMsg{event: ev}
		case <-done:
			return nil
		}
	}
}

// handleSessionEvent quits when the tracker ended this session on its own
func (m *Model) handleSessionEvent(ev session.Event) tea.Cmd {
	switch {
	case ev.Kind == session.EventShutdown:
		m.logger.Info("tracker shut down")
		return m.quit(session.ReasonShutdown)

	case ev.Kind == session.EventEnded && ev.Session.ID == m.sessionID:
		m.logger.Info("session ended by tracker", "reason", ev.Reason, "duration", ev.Duration)
		return m.quit(ev.Reason)
	}
	return m.waitForSessionEvent()
}
