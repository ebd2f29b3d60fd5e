package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/termfolio/internal/keybinds"
	"github.com/studiowebux/termfolio/internal/navigation"
	"github.com/studiowebux/termfolio/internal/session"
)

// handleKeyPress routes a key: the help overlay's bindings first while it
// is open, then the navigation decoder, then the UI bindings
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes && !msg.Paste && len(msg.Runes) > 1 {
		return m.handleKeyBurst(msg.Runes)
	}

	key := msg.String()

	if m.showHelp {
		if action, ok := m.keys.Match(keybinds.ContextHelp, key); ok {
			return m.runAction(action)
		}
	}

	raw, mods := navigation.ParseKey(key)
	if intent := navigation.Decode(raw, mods); intent.Kind != navigation.Ignore {
		m.logger.Debug("key decoded", "key", key, "rule", navigation.RuleFor(raw, mods), "intent", intent)
		return m.applyIntent(intent)
	}

	if action, ok := m.keys.Match(keybinds.ContextNavigation, key); ok {
		return m.runAction(action)
	}

	return nil
}

// handleKeyBurst handles runes that arrived in a single read one key at a
// time, stopping at the first key that quits
func (m *Model) handleKeyBurst(runes []rune) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range runes {
		cmd := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if m.quitting {
			return cmd
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// applyIntent feeds a decoded intent to the state machine and reports the
// outcome to the tracker
func (m *Model) applyIntent(intent navigation.Intent) tea.Cmd {
	tr := m.machine.Dispatch(intent)

	if tr.Exit {
		m.logger.Debug("exit requested", "section", tr.From)
		return m.quit(session.ReasonExit)
	}

	if !tr.Changed {
		m.tracker.UpdateActivity(m.sessionID, "")
		return nil
	}

	m.logger.Debug("section changed", "intent", intent, "from", tr.From, "to", tr.To)
	m.tracker.UpdateActivity(m.sessionID, tr.To)
	m.showHelp = false
	m.updatePanel()
	m.panel.GotoTop()
	return nil
}

// runAction performs a UI action from the keybinds registry
func (m *Model) runAction(action keybinds.Action) tea.Cmd {
	if action == keybinds.ActionQuit {
		return m.applyIntent(navigation.Intent{Kind: navigation.Exit})
	}

	m.tracker.UpdateActivity(m.sessionID, "")

	switch action {
	case keybinds.ActionToggleHelp:
		m.showHelp = !m.showHelp
	case keybinds.ActionCloseHelp:
		m.showHelp = false
	case keybinds.ActionScrollUp:
		m.panel.LineUp(1)
	case keybinds.ActionScrollDown:
		m.panel.LineDown(1)
	case keybinds.ActionPageUp:
		m.panel.ViewUp()
	case keybinds.ActionPageDown:
		m.panel.ViewDown()
	case keybinds.ActionCopyEmail:
		return m.copyEmail()
	default:
		// Navigation actions only reach here from keys the decoder
		// ignores; the validator reports those bindings
		m.logger.Debug("unhandled action", "action", action)
	}
	return nil
}
