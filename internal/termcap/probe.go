// Package termcap works out what the output terminal can render so the TUI
// can degrade color, glyphs and borders instead of printing garbage.
package termcap

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	// MinWidth and MinHeight are the smallest terminal the full layout fits in
	MinWidth  = 60
	MinHeight = 20
)

// Capabilities is a snapshot of what the output terminal supports
type Capabilities struct {
	ColorSupported   bool
	UnicodeSupported bool
	BordersSupported bool
	ResizeSupported  bool
	MinWidth         int
	MinHeight        int

	// ColorProfile is the richest profile the terminal advertises.
	// It is termenv.Ascii whenever ColorSupported is false.
	ColorProfile termenv.Profile
	// Interactive reports whether the output stream is a terminal
	Interactive bool
}

// Env is the input of Probe
type Env struct {
	Lookup     func(key string) (string, bool)
	IsTerminal bool
}

// MapEnv builds an Env from a fixed set of variables, for tests and the doctor command
func MapEnv(vars map[string]string, isTerminal bool) Env {
	return Env{
		Lookup: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
		IsTerminal: isTerminal,
	}
}

func (e Env) lookup(key string) (string, bool) {
	if e.Lookup == nil {
		return "", false
	}
	return e.Lookup(key)
}

func (e Env) get(key string) string {
	v, _ := e.lookup(key)
	return v
}

func (e Env) set(key string) bool {
	return e.get(key) != ""
}

var ciVars = []string{"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "BUILDKITE", "GITLAB_CI"}

// IsCI reports whether the environment looks like a CI runner
func (e Env) IsCI() bool {
	for _, k := range ciVars {
		if v := e.get(k); v != "" && v != "false" && v != "0" {
			return true
		}
	}
	return false
}

// Probe derives the capability descriptor from the environment. It has no side effects.
func Probe(env Env) Capabilities {
	term := strings.ToLower(env.get("TERM"))
	dumb := term == "dumb"

	caps := Capabilities{
		MinWidth:    MinWidth,
		MinHeight:   MinHeight,
		Interactive: env.IsTerminal,
	}

	caps.ColorProfile = colorProfile(env, term)
	caps.ColorSupported = caps.ColorProfile != termenv.Ascii

	caps.UnicodeSupported = !dumb && term != "linux" && utf8Locale(env)
	caps.BordersSupported = !dumb
	caps.ResizeSupported = env.IsTerminal && !env.IsCI()

	return caps
}

// environ adapts Env to termenv.Environ
type environ struct{ env Env }

func (e environ) Environ() []string { return nil }

func (e environ) Getenv(key string) string { return e.env.get(key) }

// colorProfile asks termenv for the profile the environment advertises and
// layers FORCE_COLOR on top of it
func colorProfile(env Env, term string) termenv.Profile {
	force, forced := env.lookup("FORCE_COLOR")
	forced = forced && force != "false"
	switch {
	case forced && force == "0":
		return termenv.Ascii
	case forced && force == "3":
		return termenv.TrueColor
	case forced && force == "2":
		return termenv.ANSI256
	}

	out := termenv.NewOutput(io.Discard,
		termenv.WithEnvironment(environ{env}),
		termenv.WithTTY(env.IsTerminal || forced),
	)
	if forced {
		return atLeastANSI(out.ColorProfile())
	}
	if term == "dumb" {
		return termenv.Ascii
	}

	p := out.EnvColorProfile()
	if env.IsTerminal && !out.EnvNoColor() {
		// termenv has no answer for unknown TERM values; any terminal
		// that is not dumb handles the basic 16 colors
		return atLeastANSI(p)
	}
	return p
}

func atLeastANSI(p termenv.Profile) termenv.Profile {
	if p == termenv.Ascii {
		return termenv.ANSI
	}
	return p
}

// utf8Locale follows the POSIX precedence: LC_ALL, then LC_CTYPE, then LANG
func utf8Locale(env Env) bool {
	for _, k := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := env.get(k); v != "" {
			v = strings.ToLower(v)
			return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
		}
	}
	return false
}

// Detect probes the real process environment for the given output stream
func Detect(out *os.File) Capabilities {
	fd := out.Fd()
	return Probe(Env{
		Lookup:     os.LookupEnv,
		IsTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	})
}

// ProfileName is the short name doctor output uses for a color profile
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	}
	return "none"
}

// Size reports the current size of the terminal behind f
func Size(f *os.File) (width, height int, ok bool) {
	w, h, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
