package cli

import (
	"fmt"

	"github.com/studiowebux/termfolio/internal/termcap"
)

// Report is everything the doctor command prints
type Report struct {
	Version string
	Term    string
	CI      bool
	Caps    termcap.Capabilities

	// Width and Height are zero when the size is unknown
	Width  int
	Height int

	ConfigFile   string
	KeybindsFile string
	LogFile      string
	ContentFile  string
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ReportRows is the doctor table content
func ReportRows(r Report) [][]string {
	colorValue := "no"
	if r.Caps.ColorSupported {
		colorValue = "yes (" + termcap.ProfileName(r.Caps.ColorProfile) + ")"
	}

	size := "unknown"
	if r.Width > 0 && r.Height > 0 {
		size = fmt.Sprintf("%dx%d", r.Width, r.Height)
		if r.Width < r.Caps.MinWidth || r.Height < r.Caps.MinHeight {
			size += " (too small)"
		}
	}

	return [][]string{
		{"version", r.Version},
		{"TERM", orDefault(r.Term, "(unset)")},
		{"interactive", yesNo(r.Caps.Interactive)},
		{"CI", yesNo(r.CI)},
		{"color", colorValue},
		{"unicode", yesNo(r.Caps.UnicodeSupported)},
		{"borders", yesNo(r.Caps.BordersSupported)},
		{"resize", yesNo(r.Caps.ResizeSupported)},
		{"minimum size", fmt.Sprintf("%dx%d", r.Caps.MinWidth, r.Caps.MinHeight)},
		{"terminal size", size},
		{"config file", orDefault(r.ConfigFile, "(none)")},
		{"keybinds file", orDefault(r.KeybindsFile, "(defaults)")},
		{"log file", orDefault(r.LogFile, "(disabled)")},
		{"content", orDefault(r.ContentFile, "(built-in)")},
	}
}

// PrintDoctor writes the capability report
func (u *UI) PrintDoctor(r Report) error {
	return u.renderTable([]string{"Check", "Value"}, ReportRows(r))
}
