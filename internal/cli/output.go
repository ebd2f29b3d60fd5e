// Package cli renders termfolio for non-interactive use: the plain
// portfolio print, the key binding table, the doctor report and the
// session summary printed on exit.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/studiowebux/termfolio/internal/termcap"
)

// UI provides colored output that follows the terminal capabilities
type UI struct {
	Out    io.Writer
	ErrOut io.Writer

	// NoColor strips every escape sequence
	NoColor bool
	// ASCII replaces bullets and bars with plain characters
	ASCII bool
}

// New creates a UI on stdout/stderr configured from caps
func New(caps termcap.Capabilities) *UI {
	return &UI{
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		NoColor: !caps.ColorSupported,
		ASCII:   !caps.UnicodeSupported,
	}
}

// paint returns a sprint func that honours NoColor regardless of the
// global fatih/color detection
func (u *UI) paint(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if u.NoColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.SprintFunc()
}

func (u *UI) glyph(unicode, ascii string) string {
	if u.ASCII {
		return ascii
	}
	return unicode
}

func (u *UI) Info(format string, a ...any) {
	prefix := u.paint(color.FgHiBlue)("i")
	fmt.Fprintf(u.Out, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}

func (u *UI) Success(format string, a ...any) {
	prefix := u.paint(color.FgHiGreen)(u.glyph("✓", "ok"))
	fmt.Fprintf(u.Out, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}

func (u *UI) Warning(format string, a ...any) {
	prefix := u.paint(color.FgHiYellow)(u.glyph("⚠", "!"))
	fmt.Fprintf(u.ErrOut, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}

func (u *UI) Error(format string, a ...any) {
	prefix := u.paint(color.FgHiRed)(u.glyph("✗", "x"))
	fmt.Fprintf(u.ErrOut, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}

// Table creates a new tablewriter configured with consistent styling.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}

// renderTable writes headers and rows as one table, stopping at the first error
func (u *UI) renderTable(headers []string, rows [][]string) error {
	table := u.Table(headers)
	for i, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("table row %d: %w", i, err)
		}
	}
	return table.Render()
}
