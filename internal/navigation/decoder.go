package navigation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

// Modifiers carries the non-character parts of a key event
type Modifiers struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Escape bool
	Ctrl   bool
}

// rule is one entry of the decoder priority chain
type rule struct {
	name   string
	match  func(raw string, mods Modifiers) bool
	intent func(raw string) Intent
}

func fixed(kind Kind) func(string) Intent {
	return func(string) Intent { return Intent{Kind: kind} }
}

// rules are evaluated in order; the first match wins
var rules = []rule{
	{
		name: "exit",
		match: func(raw string, mods Modifiers) bool {
			return mods.Escape || raw == "q" || (mods.Ctrl && raw == "c")
		},
		intent: fixed(Exit),
	},
	{
		name: "shortcut",
		match: func(raw string, _ Modifiers) bool {
			_, ok := portfolio.FromShortcut(raw)
			return ok
		},
		intent: func(raw string) Intent {
			s, _ := portfolio.FromShortcut(raw)
			return GoToSection(s)
		},
	},
	{
		name: "arrow_previous",
		match: func(_ string, mods Modifiers) bool {
			return mods.Up || mods.Left
		},
		intent: fixed(Previous),
	},
	{
		name: "arrow_next",
		match: func(_ string, mods Modifiers) bool {
			return mods.Down || mods.Right
		},
		intent: fixed(Next),
	},
	{
		name: "vim_previous",
		match: func(raw string, _ Modifiers) bool {
			k := foldLetter(raw)
			return k == "h" || k == "k"
		},
		intent: fixed(Previous),
	},
	{
		name: "vim_next",
		match: func(raw string, _ Modifiers) bool {
			k := foldLetter(raw)
			return k == "l" || k == "j"
		},
		intent: fixed(Next),
	},
	{
		name:   "jump_first",
		match:  func(raw string, _ Modifiers) bool { return raw == "g" },
		intent: fixed(JumpFirst),
	},
	{
		name:   "jump_last",
		match:  func(raw string, _ Modifiers) bool { return raw == "G" },
		intent: fixed(JumpLast),
	},
}

// foldLetter lower-cases a single alphabetic character and returns anything else unchanged
func foldLetter(raw string) string {
	r, size := utf8.DecodeRuneInString(raw)
	if size == 0 || size != len(raw) || !unicode.IsLetter(r) {
		return raw
	}
	return strings.ToLower(raw)
}

// Decode maps a raw key event to an intent. It never fails: anything no rule
// claims decodes to Ignore.
func Decode(raw string, mods Modifiers) Intent {
	for _, r := range rules {
		if r.match(raw, mods) {
			return r.intent(raw)
		}
	}
	return Intent{Kind: Ignore}
}

// RuleFor returns the name of the rule that claims the input, or "" for Ignore
func RuleFor(raw string, mods Modifiers) string {
	for _, r := range rules {
		if r.match(raw, mods) {
			return r.name
		}
	}
	return ""
}
