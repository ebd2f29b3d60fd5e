package tui

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/termfolio/internal/keybinds"
	"github.com/studiowebux/termfolio/internal/navigation"
	"github.com/studiowebux/termfolio/internal/portfolio"
	"github.com/studiowebux/termfolio/internal/session"
	"github.com/studiowebux/termfolio/internal/termcap"
)

// Options wires the model to its collaborators
type Options struct {
	Portfolio *portfolio.Portfolio
	// ContentErr replaces every panel with an error panel when the content
	// failed to load or validate
	ContentErr error

	Tracker   *session.Tracker
	SessionID string // empty generates one

	Keybinds *keybinds.Registry
	Caps     termcap.Capabilities
	JumpLast navigation.JumpLastPolicy

	Logger *slog.Logger
	Output io.Writer
	Input  io.Reader

	// Clipboard defaults to atotto/clipboard
	Clipboard func(string) error
}

// Model is the Bubble Tea model of the portfolio
type Model struct {
	portfolio  *portfolio.Portfolio
	contentErr error

	tracker   *session.Tracker
	sessionID string
	machine   *navigation.Machine
	keys      *keybinds.Registry
	caps      termcap.Capabilities
	theme     theme
	logger    *slog.Logger
	clipboard func(string) error

	// Tracker bridge
	events      chan session.Event
	done        chan struct{}
	unsubscribe func()

	// UI state
	width     int
	height    int
	panel     viewport.Model
	showHelp  bool
	statusMsg string
	errorMsg  string

	// Set when the program stops on its own
	quitting  bool
	endReason session.EndReason
}

// New creates the model and starts its session
func New(opts Options) (*Model, error) {
	if opts.Tracker == nil {
		opts.Tracker = session.Default()
	}
	if opts.Portfolio == nil {
		opts.Portfolio = portfolio.Default()
	}
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Caps.MinWidth == 0 {
		opts.Caps.MinWidth = termcap.MinWidth
	}
	if opts.Caps.MinHeight == 0 {
		opts.Caps.MinHeight = termcap.MinHeight
	}

	m := &Model{
		portfolio:  opts.Portfolio,
		contentErr: opts.ContentErr,
		tracker:    opts.Tracker,
		machine:    navigation.NewMachine(opts.JumpLast),
		keys:       opts.Keybinds,
		caps:       opts.Caps,
		theme:      newTheme(opts.Output, opts.Caps),
		logger:     opts.Logger,
		clipboard:  opts.Clipboard,
		events:     make(chan session.Event, SessionEventBuffer),
		done:       make(chan struct{}),
		panel:      viewport.New(80, 20),
	}

	// Subscribe before creating so an early end is never missed
	m.unsubscribe = m.tracker.Subscribe(m.forwardEvent)

	id, err := m.tracker.CreateSession(opts.SessionID)
	if err != nil {
		m.unsubscribe()
		return nil, fmt.Errorf("start session: %w", err)
	}
	m.sessionID = id
	m.logger = m.logger.With("session", id)

	// The opening section counts as visited
	m.tracker.UpdateActivity(id, m.machine.Current())
	m.logger.Info("session started", "section", m.machine.Current())

	return m, nil
}

// SessionID returns the tracker id of this model's session
func (m *Model) SessionID() string {
	return m.sessionID
}

// Current returns the displayed section
func (m *Model) Current() portfolio.Section {
	return m.machine.Current()
}

// EndReason is set once the program stopped on its own: exit for a user
// exit, timeout when the tracker expired the session
func (m *Model) EndReason() session.EndReason {
	return m.endReason
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return m.waitForSessionEvent()
}

// Close releases the tracker subscription. The session itself is ended by
// the caller, which knows why the program stopped.
func (m *Model) Close() {
	select {
	case <-m.done:
		return
	default:
	}
	close(m.done)
	m.unsubscribe()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.caps.ResizeSupported {
			// nobody can resize this terminal, so lay out at the minimum
			// instead of asking for a bigger window
			m.width = max(m.width, m.caps.MinWidth)
			m.height = max(m.height, m.caps.MinHeight)
		}
		m.tracker.UpdateTerminalSize(m.sessionID, session.TerminalSize{Width: msg.Width, Height: msg.Height})
		m.updatePanel()

	case sessionEventMsg:
		cmd = m.handleSessionEvent(msg.event)

	case statusMsg:
		cmd = m.setStatusMessage(string(msg))

	case clearStatusMsg:
		m.statusMsg = ""

	case errorMsg:
		cmd = m.setErrorMessage(string(msg))

	case clearErrorMsg:
		m.errorMsg = ""
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}
	if m.contentErr != nil {
		return m.renderContentError()
	}
	if m.width < m.caps.MinWidth || m.height < m.caps.MinHeight {
		return m.renderTooSmall()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// quit stops the program, remembering why
func (m *Model) quit(reason session.EndReason) tea.Cmd {
	m.quitting = true
	m.endReason = reason
	return tea.Quit
}

// Custom message types
type statusMsg string
type clearStatusMsg struct{}
type errorMsg string
type clearErrorMsg struct{}

func truncateMessage(msg string) string {
	if r := []rune(msg); len(r) > MaxStatusLength {
		return string(r[:MaxStatusLength-3]) + "..."
	}
	return msg
}

// Helper methods for setting messages with timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncateMessage(msg)
	m.errorMsg = ""
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncateMessage(msg)
	m.statusMsg = ""
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// copyEmail writes the contact email to the clipboard
func (m *Model) copyEmail() tea.Cmd {
	email := m.portfolio.Contact.Email
	write := m.clipboard
	return func() tea.Msg {
		if email == "" {
			return errorMsg("No email to copy")
		}
		if err := write(email); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusMsg("Copied " + email + " to clipboard")
	}
}
