package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/termfolio/internal/keybinds"
	"github.com/studiowebux/termfolio/internal/portfolio"
)

// panelSize is the viewport size for the current window
func (m *Model) panelSize() (width, height int) {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = 80, 24
	}
	return max(1, w-PanelBorderWidth-PanelPaddingHorizontal), max(1, h-PanelOverhead)
}

// updatePanel re-renders the current section into the viewport
func (m *Model) updatePanel() {
	w, h := m.panelSize()
	m.panel.Width = w
	m.panel.Height = h
	m.panel.SetContent(m.renderSection(m.machine.Current(), w))
}

// renderMain renders header, navigation bar, content panel, legend and status
func (m *Model) renderMain() string {
	_, h := m.panelSize()
	panel := m.theme.panel.
		Width(m.width - PanelBorderWidth).
		Height(h).
		Render(m.panel.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderNavBar(),
		panel,
		m.renderFooter(),
		m.renderStatusBar(),
	)
}

func (m *Model) renderHeader() string {
	clip := m.theme.renderer.NewStyle().MaxWidth(m.width)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		clip.Render(m.theme.name.Render(m.portfolio.Name)),
		clip.Render(m.theme.title.Render(m.portfolio.Title)),
	)
}

// NavLabels returns the tab labels for a bar of the given width: "1 Home"
// style labels when they fit, otherwise bare shortcuts except for the
// current section
func NavLabels(current portfolio.Section, width int) []string {
	sections := portfolio.Sections()
	labels := make([]string, len(sections))
	total := 0
	for i, s := range sections {
		labels[i] = s.Shortcut() + " " + s.Label()
		total += runewidth.StringWidth(labels[i]) + 2
	}
	if total <= width {
		return labels
	}

	for i, s := range sections {
		if s != current {
			labels[i] = s.Shortcut()
		}
	}
	return labels
}

func (m *Model) renderNavBar() string {
	current := m.machine.Current()
	labels := NavLabels(current, m.width)

	var b strings.Builder
	for i, s := range portfolio.Sections() {
		label := " " + labels[i] + " "
		if s == current {
			b.WriteString(m.theme.navCurrent.Render(label))
		} else {
			b.WriteString(m.theme.navItem.Render(label))
		}
	}
	return m.theme.renderer.NewStyle().MaxWidth(m.width).Render(b.String())
}

// legendActions are the actions the footer advertises, in order
var legendActions = []keybinds.Action{
	keybinds.ActionNextSection,
	keybinds.ActionPreviousSection,
	keybinds.ActionGoToSection,
	keybinds.ActionToggleHelp,
	keybinds.ActionCopyEmail,
	keybinds.ActionQuit,
}

// keySummary shortens a key list for the legend: digit runs become "1-6",
// otherwise one arrow (horizontal preferred) and one other key
func (m *Model) keySummary(keys []string) string {
	if len(keys) > 2 && isDigitRun(keys) {
		return keys[0] + "-" + keys[len(keys)-1]
	}

	var arrow, other string
	for _, k := range keys {
		switch k {
		case "left", "right":
			arrow = k
		case "up", "down":
			if arrow == "" {
				arrow = k
			}
		default:
			if other == "" {
				other = k
			}
		}
	}

	var out []string
	if arrow != "" {
		out = append(out, m.theme.keyLabel(arrow))
	}
	if other != "" {
		out = append(out, m.theme.keyLabel(other))
	}
	return strings.Join(out, "/")
}

func isDigitRun(keys []string) bool {
	for i, k := range keys {
		if len(k) != 1 || k[0] < '0' || k[0] > '9' {
			return false
		}
		if i > 0 && k[0] != keys[i-1][0]+1 {
			return false
		}
	}
	return true
}

// LegendItem is one "keys description" entry of the footer
type LegendItem struct {
	Keys        string
	Description string
}

// Legend lists the footer entries generated from the keybinds registry
func (m *Model) Legend() []LegendItem {
	var items []LegendItem
	for _, action := range legendActions {
		keys := m.keys.GetBinding(keybinds.ContextNavigation, action)
		if len(keys) == 0 {
			continue
		}
		items = append(items, LegendItem{Keys: m.keySummary(keys), Description: action.Description()})
	}
	return items
}

// renderFooter drops legend entries from the end until the footer fits
func (m *Model) renderFooter() string {
	var parts []string
	width := 0
	for _, item := range m.Legend() {
		w := runewidth.StringWidth(item.Keys) + 1 + runewidth.StringWidth(item.Description)
		if len(parts) > 0 {
			w += 2
		}
		if width+w > m.width {
			break
		}
		width += w
		parts = append(parts, m.theme.key.Render(item.Keys)+" "+m.theme.subtle.Render(item.Description))
	}
	return strings.Join(parts, "  ")
}

// renderStatusBar shows the pending message, or the position in the catalog
func (m *Model) renderStatusBar() string {
	clip := m.theme.renderer.NewStyle().MaxWidth(m.width)
	switch {
	case m.errorMsg != "":
		return clip.Render(m.theme.error.Render(m.errorMsg))
	case m.statusMsg != "":
		return clip.Render(m.theme.success.Render(m.statusMsg))
	}

	current := m.machine.Current()
	status := fmt.Sprintf("%d/%d %s", portfolio.IndexOf(current)+1, portfolio.Count(), current.Label())
	if m.panel.TotalLineCount() > m.panel.Height {
		status += fmt.Sprintf(" %s %3.f%%", m.theme.glyphs.separator, m.panel.ScrollPercent()*100)
	}
	return clip.Render(m.theme.subtle.Render(status))
}

// renderHelp renders the key binding overlay
func (m *Model) renderHelp() string {
	var rows [][]string
	for _, ctx := range []keybinds.Context{keybinds.ContextNavigation, keybinds.ContextGlobal, keybinds.ContextHelp} {
		for _, g := range m.keys.Grouped(ctx) {
			labels := make([]string, len(g.Keys))
			for i, k := range g.Keys {
				labels[i] = m.theme.keyLabel(k)
			}
			rows = append(rows, []string{strings.Join(labels, " "), g.Action.Description()})
		}
	}

	cell := m.theme.renderer.NewStyle().Padding(0, 1)
	t := table.New().
		Border(m.theme.border).
		BorderStyle(m.theme.subtle).
		Headers("Keys", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return m.theme.heading.Padding(0, 1)
			case col == 0:
				return m.theme.key.Padding(0, 1)
			}
			return cell
		})

	return m.theme.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, t.Render())
}

// renderTooSmall is shown instead of the layout below the minimum size
func (m *Model) renderTooSmall() string {
	msg := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.warning.Render("Terminal too small"),
		fmt.Sprintf("need %dx%d, have %dx%d", m.caps.MinWidth, m.caps.MinHeight, m.width, m.height),
		m.theme.subtle.Render("resize or press q to quit"),
	)
	return m.theme.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

// renderContentError replaces the panels when the portfolio content is invalid
func (m *Model) renderContentError() string {
	lines := []string{m.theme.error.Bold(true).Render("Could not load portfolio content"), ""}
	for _, line := range strings.Split(m.contentErr.Error(), "\n") {
		lines = append(lines, m.theme.glyphs.bullet+" "+line)
	}
	lines = append(lines, "", m.theme.subtle.Render("press q to quit"))

	box := m.theme.panel.
		BorderForeground(colorRed).
		MaxWidth(m.width).
		Render(strings.Join(lines, "\n"))
	return m.theme.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
