package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/termfolio/internal/portfolio"
	"github.com/studiowebux/termfolio/internal/termcap"
)

func TestView_Initializing(t *testing.T) {
	m := CreateTestModel(t)
	m.width = 0
	AssertModelField(t, "view", m.View(), "Initializing...")
}

func TestView_Main(t *testing.T) {
	m := CreateTestModel(t)
	view := m.View()

	for _, want := range []string{"Alex Morgan", "1 Home", "6 Contact", "Sections", "1/6 Home", "help"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "\x1b[") {
		t.Error("view should have no escape sequences without color support")
	}

	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w > 100 {
			t.Errorf("line %d is %d columns wide", i, w)
		}
	}
}

func TestView_SectionPanels(t *testing.T) {
	p := portfolio.Default()
	tests := []struct {
		key  string
		want []string
	}{
		{"2", []string{"About", "distributed services"}},
		{"3", []string{"Northwind Systems", "2021 - Present, Remote", "•"}},
		{"4", []string{"Languages", "●●●●●"}},
		{"5", []string{"logtail", p.Projects[0].URL}},
		{"6", []string{p.Contact.Email, "Press y to copy"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := CreateTestModel(t)
			press(m, tt.key)
			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("section %s view missing %q", tt.key, want)
				}
			}
		})
	}
}

func TestView_TooSmall(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 59, Height: 30})

	view := m.View()
	if !strings.Contains(view, "Terminal too small") || !strings.Contains(view, "need 60x20, have 59x30") {
		t.Errorf("unexpected view:\n%s", view)
	}

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("60x20 should fit")
	}
}

func TestView_NoResizeLaysOutAtMinimum(t *testing.T) {
	caps := testCaps()
	caps.ResizeSupported = false
	h := createHarness(t, Options{Caps: caps})

	h.model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if strings.Contains(h.model.View(), "Terminal too small") {
		t.Error("too-small panel shown where resizing is impossible")
	}
	if size := h.record(t).TerminalSize; size == nil || size.Width != 40 || size.Height != 10 {
		t.Errorf("TerminalSize = %+v, want the reported 40x10", size)
	}
}

func TestView_ContentError(t *testing.T) {
	h := createHarness(t, Options{ContentErr: errors.Join(
		errors.New("name: is required"),
		errors.New("contact.email: invalid address"),
	)})

	view := h.model.View()
	for _, want := range []string{"Could not load portfolio content", "name: is required", "contact.email: invalid address"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if cmd := press(h.model, "q"); !isQuit(cmd) {
		t.Error("q should still quit")
	}
}

func TestView_Help(t *testing.T) {
	m := CreateTestModel(t)
	press(m, "?")

	view := m.View()
	for _, want := range []string{"Keys", "next section", "copy email", "close help", "→"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}
}

func TestView_ASCII(t *testing.T) {
	caps := termcap.Probe(termcap.MapEnv(map[string]string{"TERM": "xterm"}, true))
	h := createHarness(t, Options{Caps: caps})
	press(h.model, "4")

	view := h.model.View()
	if !strings.Contains(view, "#####") || !strings.Contains(view, "+---") {
		t.Errorf("expected ASCII bars and border:\n%s", view)
	}
	if strings.ContainsAny(view, "●╭•") {
		t.Error("unexpected unicode glyphs")
	}
}

func TestView_StatusMessage(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(statusMsg("Copied"))
	if !strings.Contains(m.View(), "Copied") {
		t.Error("status message not shown")
	}
}

func TestNavLabels(t *testing.T) {
	wide := NavLabels(portfolio.SectionSkills, 100)
	if wide[0] != "1 Home" || wide[5] != "6 Contact" {
		t.Errorf("wide labels = %v", wide)
	}

	narrow := NavLabels(portfolio.SectionSkills, 40)
	want := []string{"1", "2", "3", "4 Skills", "5", "6"}
	if !reflect.DeepEqual(narrow, want) {
		t.Errorf("narrow labels = %v, want %v", narrow, want)
	}
}

func TestLegend(t *testing.T) {
	m := CreateTestModel(t)
	legend := m.Legend()
	if len(legend) == 0 {
		t.Fatal("empty legend")
	}

	got := make(map[string]string)
	for _, item := range legend {
		got[item.Description] = item.Keys
	}
	want := map[string]string{
		"next section":     "→/j",
		"previous section": "←/h",
		"jump to section":  "1-6",
		"help":             "?",
		"copy email":       "y",
		"quit":             "q",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("legend = %v, want %v", got, want)
	}
}

func TestFooterFitsWidth(t *testing.T) {
	m := CreateTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	footer := m.renderFooter()
	if w := runewidth.StringWidth(footer); w > 60 {
		t.Errorf("footer is %d columns wide: %q", w, footer)
	}
	if !strings.Contains(footer, "next section") {
		t.Errorf("footer lost its first entry: %q", footer)
	}
}
