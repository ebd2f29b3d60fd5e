package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

// Format selects the print output encoding
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts text, yaml and json; empty means text
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, yaml or json)", s)
}

// PrintWidth is the wrap column of the text format
const PrintWidth = 76

// homeContent is what the home section carries in structured output
type homeContent struct {
	Name    string `yaml:"name" json:"name"`
	Title   string `yaml:"title" json:"title"`
	Tagline string `yaml:"tagline" json:"tagline"`
}

// sectionValue extracts one section of p for structured output
func sectionValue(p *portfolio.Portfolio, s portfolio.Section) any {
	switch s {
	case portfolio.SectionHome:
		return homeContent{Name: p.Name, Title: p.Title, Tagline: p.Tagline}
	case portfolio.SectionAbout:
		return p.About
	case portfolio.SectionExperience:
		return p.Experience
	case portfolio.SectionSkills:
		return p.Skills
	case portfolio.SectionProjects:
		return p.Projects
	case portfolio.SectionContact:
		return p.Contact
	}
	return p
}

// PrintPortfolio writes the portfolio, or a single section when only is set
func (u *UI) PrintPortfolio(p *portfolio.Portfolio, only portfolio.Section, format Format) error {
	var value any = p
	if only != "" {
		if !only.Valid() {
			return fmt.Errorf("unknown section %q", only)
		}
		value = sectionValue(p, only)
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(u.Out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(u.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	sections := portfolio.Sections()
	if only != "" {
		sections = []portfolio.Section{only}
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(u.Out)
		}
		u.printSection(p, s)
	}
	return nil
}

func (u *UI) heading(label string) {
	bold := u.paint(color.Bold, color.FgHiCyan)
	fmt.Fprintln(u.Out, bold(label))
	fmt.Fprintln(u.Out, strings.Repeat(u.glyph("─", "-"), runewidth.StringWidth(label)))
}

func (u *UI) printSection(p *portfolio.Portfolio, s portfolio.Section) {
	bold := u.paint(color.Bold)
	faint := u.paint(color.Faint)
	link := u.paint(color.FgHiBlue, color.Underline)
	bullet := u.glyph("•", "-")

	switch s {
	case portfolio.SectionHome:
		fmt.Fprintln(u.Out, u.paint(color.Bold, color.FgHiMagenta)(p.Name))
		fmt.Fprintln(u.Out, p.Title)
		if p.Tagline != "" {
			fmt.Fprintln(u.Out, faint(p.Tagline))
		}

	case portfolio.SectionAbout:
		u.heading(s.Label())
		for i, para := range p.About {
			if i > 0 {
				fmt.Fprintln(u.Out)
			}
			writeWrapped(u.Out, para, "", PrintWidth)
		}

	case portfolio.SectionExperience:
		u.heading(s.Label())
		for i, e := range p.Experience {
			if i > 0 {
				fmt.Fprintln(u.Out)
			}
			fmt.Fprintf(u.Out, "%s @ %s\n", bold(e.Role), e.Company)
			meta := e.Period
			if e.Location != "" {
				meta += ", " + e.Location
			}
			fmt.Fprintln(u.Out, faint(meta))
			for _, h := range e.Highlights {
				writeWrapped(u.Out, h, "  "+bullet+" ", PrintWidth)
			}
		}

	case portfolio.SectionSkills:
		u.heading(s.Label())
		nameWidth := 0
		for _, g := range p.Skills {
			for _, sk := range g.Skills {
				nameWidth = max(nameWidth, runewidth.StringWidth(sk.Name))
			}
		}
		for i, g := range p.Skills {
			if i > 0 {
				fmt.Fprintln(u.Out)
			}
			fmt.Fprintln(u.Out, bold(g.Category))
			for _, sk := range g.Skills {
				fmt.Fprintf(u.Out, "  %s  %s\n", runewidth.FillRight(sk.Name, nameWidth), u.levelBar(sk.Level))
			}
		}

	case portfolio.SectionProjects:
		u.heading(s.Label())
		for i, pr := range p.Projects {
			if i > 0 {
				fmt.Fprintln(u.Out)
			}
			fmt.Fprintln(u.Out, bold(pr.Name))
			writeWrapped(u.Out, pr.Description, "  ", PrintWidth)
			if len(pr.Tech) > 0 {
				fmt.Fprintf(u.Out, "  %s\n", faint(strings.Join(pr.Tech, ", ")))
			}
			if pr.URL != "" {
				fmt.Fprintf(u.Out, "  %s\n", link(pr.URL))
			}
		}

	case portfolio.SectionContact:
		u.heading(s.Label())
		for _, row := range contactRows(p.Contact) {
			fmt.Fprintf(u.Out, "%s  %s\n", bold(runewidth.FillRight(row[0], 8)), row[1])
		}
	}
}

// contactRows lists the non-empty contact fields in display order
func contactRows(c portfolio.Contact) [][2]string {
	var rows [][2]string
	for _, r := range [][2]string{
		{"Email", c.Email},
		{"Website", c.Website},
		{"GitHub", c.GitHub},
		{"LinkedIn", c.LinkedIn},
		{"Location", c.Location},
	} {
		if r[1] != "" {
			rows = append(rows, r)
		}
	}
	return rows
}

// levelBar draws a skill level such as ●●●○○
func (u *UI) levelBar(level int) string {
	level = min(max(level, 0), portfolio.MaxSkillLevel)
	full, empty := u.glyph("●", "#"), u.glyph("○", "-")
	return u.paint(color.FgHiGreen)(strings.Repeat(full, level)) + strings.Repeat(empty, portfolio.MaxSkillLevel-level)
}

// writeWrapped word-wraps text to width display columns; continuation
// lines are indented to line up with the first
func writeWrapped(w io.Writer, text, prefix string, width int) {
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	for _, line := range Wrap(text, width-runewidth.StringWidth(prefix)) {
		fmt.Fprintln(w, prefix+line)
		prefix = indent
	}
}

// Wrap splits text into lines of at most width display columns. Words
// longer than width get a line of their own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}

	var lines []string
	line, lineWidth := words[0], runewidth.StringWidth(words[0])
	for _, word := range words[1:] {
		ww := runewidth.StringWidth(word)
		if lineWidth+1+ww > width {
			lines = append(lines, line)
			line, lineWidth = word, ww
			continue
		}
		line += " " + word
		lineWidth += 1 + ww
	}
	return append(lines, line)
}
