package tui

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/termfolio/internal/keybinds"
	"github.com/studiowebux/termfolio/internal/navigation"
	"github.com/studiowebux/termfolio/internal/portfolio"
	"github.com/studiowebux/termfolio/internal/session"
	"github.com/studiowebux/termfolio/internal/termcap"
)

// testCaps is an interactive UTF-8 xterm without color, so rendered
// output can be compared as plain text
func testCaps() termcap.Capabilities {
	return termcap.Probe(termcap.MapEnv(map[string]string{
		"TERM":     "xterm-256color",
		"LANG":     "en_US.UTF-8",
		"NO_COLOR": "1",
	}, true))
}

// testHarness bundles a model with the fakes behind it
type testHarness struct {
	model   *Model
	tracker *session.Tracker
	copied  []string
}

// CreateTestModel creates a Model instance for testing with minimal dependencies
func CreateTestModel(t *testing.T) *Model {
	t.Helper()
	return createHarness(t, Options{}).model
}

func createHarness(t *testing.T, opts Options) *testHarness {
	t.Helper()

	h := &testHarness{}
	if opts.Tracker == nil {
		opts.Tracker = session.New(session.Options{})
	}
	h.tracker = opts.Tracker
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = h.tracker.Shutdown(ctx)
	})

	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Caps == (termcap.Capabilities{}) {
		opts.Caps = testCaps()
	}
	if opts.JumpLast == "" {
		opts.JumpLast = navigation.JumpLastContact
	}
	if opts.Output == nil {
		opts.Output = &bytes.Buffer{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		}
	}

	m, err := New(opts)
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	t.Cleanup(m.Close)
	h.model = m

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

// specialKeys maps Bubble Tea key names to key types
var specialKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"esc":    tea.KeyEscape,
	"enter":  tea.KeyEnter,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+d": tea.KeyCtrlD,
	"ctrl+u": tea.KeyCtrlU,
	"ctrl+e": tea.KeyCtrlE,
	"ctrl+y": tea.KeyCtrlY,
}

// keyMsg builds the KeyMsg whose String() is name
func keyMsg(name string) tea.KeyMsg {
	if kt, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// press sends keys in order and returns the last command
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// isQuit reports whether cmd is tea.Quit
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// record returns the tracker's copy of the model's session
func (h *testHarness) record(t *testing.T) session.Record {
	t.Helper()
	rec, ok := h.tracker.GetSession(h.model.SessionID())
	if !ok {
		t.Fatalf("session %s not found", h.model.SessionID())
	}
	return rec
}

// AssertModelField is a helper to assert model field values
func AssertModelField(t *testing.T, fieldName string, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", fieldName, got, want)
	}
}

// visited lists sections as the tracker records them
func visited(sections ...portfolio.Section) []portfolio.Section {
	return sections
}
