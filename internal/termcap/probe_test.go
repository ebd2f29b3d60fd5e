package termcap

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestProbeColor(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		tty      bool
		want     bool
		wantProf termenv.Profile
	}{
		{"plain xterm", map[string]string{"TERM": "xterm"}, true, true, termenv.ANSI},
		{"256 colors", map[string]string{"TERM": "xterm-256color"}, true, true, termenv.ANSI256},
		{"truecolor", map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"}, true, true, termenv.TrueColor},
		{"NO_COLOR", map[string]string{"TERM": "xterm-256color", "NO_COLOR": "1"}, true, false, termenv.Ascii},
		{"dumb terminal", map[string]string{"TERM": "dumb"}, true, false, termenv.Ascii},
		{"piped output", map[string]string{"TERM": "xterm"}, false, false, termenv.Ascii},
		{"forced when piped", map[string]string{"TERM": "xterm", "FORCE_COLOR": "1"}, false, true, termenv.ANSI},
		{"forced beats NO_COLOR", map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "3"}, true, true, termenv.TrueColor},
		{"FORCE_COLOR=0 disables", map[string]string{"TERM": "xterm-256color", "FORCE_COLOR": "0"}, true, false, termenv.Ascii},
		{"FORCE_COLOR=2", map[string]string{"FORCE_COLOR": "2"}, false, true, termenv.ANSI256},
		{"unknown TERM on a terminal", map[string]string{"TERM": "vt100"}, true, true, termenv.ANSI},
		{"kitty", map[string]string{"TERM": "xterm-kitty"}, true, true, termenv.TrueColor},
		{"CLICOLOR=0", map[string]string{"TERM": "xterm-256color", "CLICOLOR": "0"}, true, false, termenv.Ascii},
		{"CLICOLOR_FORCE when piped", map[string]string{"TERM": "xterm", "CLICOLOR_FORCE": "1"}, false, true, termenv.ANSI},
		{"FORCE_COLOR=false is unset", map[string]string{"TERM": "xterm", "FORCE_COLOR": "false"}, false, false, termenv.Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := Probe(MapEnv(tt.vars, tt.tty))
			if caps.ColorSupported != tt.want {
				t.Errorf("ColorSupported = %v, want %v", caps.ColorSupported, tt.want)
			}
			if caps.ColorProfile != tt.wantProf {
				t.Errorf("ColorProfile = %v, want %v", caps.ColorProfile, tt.wantProf)
			}
		})
	}
}

func TestProbeUnicode(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{"LANG utf-8", map[string]string{"TERM": "xterm", "LANG": "en_US.UTF-8"}, true},
		{"LANG utf8 lowercase", map[string]string{"TERM": "xterm", "LANG": "C.utf8"}, true},
		{"LC_ALL overrides LANG", map[string]string{"TERM": "xterm", "LC_ALL": "C", "LANG": "en_US.UTF-8"}, false},
		{"LC_CTYPE before LANG", map[string]string{"TERM": "xterm", "LC_CTYPE": "en_US.UTF-8", "LANG": "C"}, true},
		{"no locale", map[string]string{"TERM": "xterm"}, false},
		{"linux console", map[string]string{"TERM": "linux", "LANG": "en_US.UTF-8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Probe(MapEnv(tt.vars, true)).UnicodeSupported; got != tt.want {
				t.Errorf("UnicodeSupported = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProbeBordersAndResize(t *testing.T) {
	caps := Probe(MapEnv(map[string]string{"TERM": "xterm"}, true))
	if !caps.BordersSupported || !caps.ResizeSupported || !caps.Interactive {
		t.Errorf("interactive xterm caps = %+v", caps)
	}
	if caps.MinWidth != MinWidth || caps.MinHeight != MinHeight {
		t.Errorf("min size = %dx%d", caps.MinWidth, caps.MinHeight)
	}

	caps = Probe(MapEnv(map[string]string{"TERM": "dumb"}, true))
	if caps.BordersSupported {
		t.Error("dumb terminal should not support borders")
	}

	caps = Probe(MapEnv(map[string]string{"TERM": "xterm", "CI": "true"}, true))
	if caps.ResizeSupported {
		t.Error("CI should disable resize support")
	}

	caps = Probe(MapEnv(map[string]string{"TERM": "xterm", "CI": "false"}, true))
	if !caps.ResizeSupported {
		t.Error("CI=false should not count as CI")
	}

	caps = Probe(MapEnv(map[string]string{"TERM": "xterm"}, false))
	if caps.ResizeSupported {
		t.Error("non-terminal output should not support resize")
	}
}

func TestProbeNilLookup(t *testing.T) {
	caps := Probe(Env{})
	if caps.ColorSupported || caps.UnicodeSupported || caps.ResizeSupported {
		t.Errorf("empty env caps = %+v", caps)
	}
}

func TestProfileName(t *testing.T) {
	tests := map[termenv.Profile]string{
		termenv.TrueColor: "truecolor",
		termenv.ANSI256:   "256 colors",
		termenv.ANSI:      "16 colors",
		termenv.Ascii:     "none",
	}
	for p, want := range tests {
		if got := ProfileName(p); got != want {
			t.Errorf("ProfileName(%v) = %q, want %q", p, got, want)
		}
	}
}
