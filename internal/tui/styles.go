package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/termfolio/internal/termcap"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed     = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff79c6"}
	colorBlue    = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#8be9fd"}
)

// asciiBorder is used when the terminal cannot draw box characters
var asciiBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

// glyphs are the decorative characters with their ASCII fallbacks
type glyphs struct {
	bullet    string
	levelFull string
	levelNone string
	separator string
	ellipsis  string
	arrows    map[string]string
}

var unicodeGlyphs = glyphs{
	bullet:    "•",
	levelFull: "●",
	levelNone: "○",
	separator: "│",
	ellipsis:  "…",
	arrows:    map[string]string{"up": "↑", "down": "↓", "left": "←", "right": "→"},
}

var asciiGlyphs = glyphs{
	bullet:    "-",
	levelFull: "#",
	levelNone: "-",
	separator: "|",
	ellipsis:  "...",
	arrows:    map[string]string{},
}

// theme holds every style, built from a renderer bound to the program output
type theme struct {
	renderer *lipgloss.Renderer
	glyphs   glyphs
	border   lipgloss.Border

	name       lipgloss.Style
	title      lipgloss.Style
	navItem    lipgloss.Style
	navCurrent lipgloss.Style
	panel      lipgloss.Style
	heading    lipgloss.Style
	bold       lipgloss.Style
	subtle     lipgloss.Style
	key        lipgloss.Style
	link       lipgloss.Style
	level      lipgloss.Style
	success    lipgloss.Style
	warning    lipgloss.Style
	error      lipgloss.Style
}

// newTheme derives styles from the capability descriptor: color profile,
// glyph set and border
func newTheme(out io.Writer, caps termcap.Capabilities) theme {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(caps.ColorProfile)

	t := theme{renderer: r, glyphs: asciiGlyphs, border: asciiBorder}
	if caps.UnicodeSupported {
		t.glyphs = unicodeGlyphs
		t.border = lipgloss.RoundedBorder()
	}
	if !caps.BordersSupported {
		t.border = lipgloss.HiddenBorder()
	}

	t.name = r.NewStyle().Bold(true).Foreground(colorMagenta)
	t.title = r.NewStyle().Foreground(colorGray)
	t.navItem = r.NewStyle().Foreground(colorGray)
	t.navCurrent = r.NewStyle().
		Bold(true).
		Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
		Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})
	t.panel = r.NewStyle().
		Border(t.border).
		BorderForeground(colorCyan).
		Padding(0, PanelPaddingHorizontal/2)
	t.heading = r.NewStyle().Bold(true).Foreground(colorCyan)
	t.bold = r.NewStyle().Bold(true)
	t.subtle = r.NewStyle().Foreground(colorGray)
	t.key = r.NewStyle().Bold(true).Foreground(colorYellow)
	t.link = r.NewStyle().Underline(true).Foreground(colorBlue)
	t.level = r.NewStyle().Foreground(colorGreen)
	t.success = r.NewStyle().Foreground(colorGreen)
	t.warning = r.NewStyle().Foreground(colorYellow)
	t.error = r.NewStyle().Foreground(colorRed)

	return t
}

// keyLabel shows arrow keys as glyphs when the terminal can draw them
func (t theme) keyLabel(key string) string {
	if g, ok := t.glyphs.arrows[key]; ok {
		return g
	}
	return key
}
