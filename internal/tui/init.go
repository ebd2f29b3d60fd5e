package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/termfolio/internal/session"
)

// Run starts the TUI and blocks until the user exits, the tracker ends the
// session or ctx is cancelled. The session is ended before Run returns;
// the returned reason says why.
func Run(ctx context.Context, opts Options) (session.EndReason, error) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	m, err := New(opts)
	if err != nil {
		return "", err
	}
	defer m.Close()

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(opts.Output),
		// signals arrive through ctx
		tea.WithoutSignalHandler(),
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if m.caps.Interactive {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(m, progOpts...)
	_, runErr := p.Run()

	reason := endReason(ctx, m.EndReason(), runErr)
	m.tracker.EndSession(m.sessionID, reason)
	m.logger.Info("session closed", "reason", reason)

	if reason == session.ReasonShutdown {
		return reason, nil
	}
	return reason, runErr
}

// endReason maps how the program stopped to a session end reason
func endReason(ctx context.Context, own session.EndReason, runErr error) session.EndReason {
	switch {
	case runErr == nil && own != "":
		return own
	case runErr == nil:
		return session.ReasonExit
	case errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil:
		return session.ReasonShutdown
	}
	return session.ReasonError
}
