package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/termfolio/internal/keybinds"
	"github.com/studiowebux/termfolio/internal/portfolio"
)

// renderSection renders the content of one section for a panel width
func (m *Model) renderSection(s portfolio.Section, width int) string {
	switch s {
	case portfolio.SectionHome:
		return m.renderHome(width)
	case portfolio.SectionAbout:
		return m.renderAbout(width)
	case portfolio.SectionExperience:
		return m.renderExperience(width)
	case portfolio.SectionSkills:
		return m.renderSkills()
	case portfolio.SectionProjects:
		return m.renderProjects(width)
	case portfolio.SectionContact:
		return m.renderContact()
	}
	return ""
}

// wrap word-wraps text to width columns
func (m *Model) wrap(text string, width int) string {
	return m.theme.renderer.NewStyle().Width(max(1, width)).Render(text)
}

// bulleted wraps text behind a bullet with a hanging indent
func (m *Model) bulleted(text string, width int) string {
	bullet := m.theme.glyphs.bullet + " "
	indent := strings.Repeat(" ", runewidth.StringWidth(bullet))
	lines := strings.Split(m.wrap(text, width-len(indent)), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = bullet + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHome(width int) string {
	p := m.portfolio
	lines := []string{
		"",
		m.theme.name.Render(p.Name),
		m.theme.bold.Render(p.Title),
	}
	if p.Tagline != "" {
		lines = append(lines, "", m.wrap(p.Tagline, width))
	}

	lines = append(lines, "", m.theme.heading.Render("Sections"))
	for _, s := range portfolio.Sections()[1:] {
		lines = append(lines, "  "+m.theme.key.Render(s.Shortcut())+"  "+s.Label())
	}

	help := m.keys.GetBinding(keybinds.ContextNavigation, keybinds.ActionToggleHelp)
	if len(help) > 0 {
		lines = append(lines, "", m.theme.subtle.Render("Press "+help[0]+" for all keys"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderAbout(width int) string {
	var paras []string
	for _, para := range m.portfolio.About {
		paras = append(paras, m.wrap(para, width))
	}
	return m.theme.heading.Render("About") + "\n\n" + strings.Join(paras, "\n\n")
}

func (m *Model) renderExperience(width int) string {
	blocks := []string{m.theme.heading.Render("Experience")}
	for _, e := range m.portfolio.Experience {
		lines := []string{m.theme.bold.Render(e.Role) + " @ " + e.Company}
		meta := e.Period
		if e.Location != "" {
			meta += ", " + e.Location
		}
		lines = append(lines, m.theme.subtle.Render(meta))
		for _, h := range e.Highlights {
			lines = append(lines, m.bulleted(h, width))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// levelBar draws a skill level such as ●●●○○
func (m *Model) levelBar(level int) string {
	level = min(max(level, 0), portfolio.MaxSkillLevel)
	return m.theme.level.Render(strings.Repeat(m.theme.glyphs.levelFull, level)) +
		m.theme.subtle.Render(strings.Repeat(m.theme.glyphs.levelNone, portfolio.MaxSkillLevel-level))
}

func (m *Model) renderSkills() string {
	nameWidth := 0
	for _, g := range m.portfolio.Skills {
		for _, sk := range g.Skills {
			nameWidth = max(nameWidth, runewidth.StringWidth(sk.Name))
		}
	}

	blocks := []string{m.theme.heading.Render("Skills")}
	for _, g := range m.portfolio.Skills {
		lines := []string{m.theme.bold.Render(g.Category)}
		for _, sk := range g.Skills {
			lines = append(lines, "  "+runewidth.FillRight(sk.Name, nameWidth)+"  "+m.levelBar(sk.Level))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderProjects(width int) string {
	blocks := []string{m.theme.heading.Render("Projects")}
	sep := " " + m.theme.glyphs.separator + " "
	for _, p := range m.portfolio.Projects {
		lines := []string{m.theme.bold.Render(p.Name), m.wrap(p.Description, width)}
		if len(p.Tech) > 0 {
			lines = append(lines, m.theme.subtle.Render(strings.Join(p.Tech, sep)))
		}
		if p.URL != "" {
			lines = append(lines, m.theme.link.Render(p.URL))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderContact() string {
	c := m.portfolio.Contact
	rows := [][2]string{
		{"Email", c.Email},
		{"Website", c.Website},
		{"GitHub", c.GitHub},
		{"LinkedIn", c.LinkedIn},
		{"Location", c.Location},
	}

	lines := []string{m.theme.heading.Render("Contact"), ""}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		value := r[1]
		if r[0] != "Location" {
			value = m.theme.link.Render(value)
		}
		lines = append(lines, m.theme.bold.Render(runewidth.FillRight(r[0], 9))+value)
	}

	if keys := m.keys.GetBinding(keybinds.ContextNavigation, keybinds.ActionCopyEmail); len(keys) > 0 && c.Email != "" {
		lines = append(lines, "", m.theme.subtle.Render("Press "+keys[0]+" to copy the email address"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
