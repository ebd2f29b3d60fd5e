package navigation

import (
	"math/rand"
	"testing"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		mods Modifiers
		want Intent
	}{
		{"escape", "", Modifiers{Escape: true}, Intent{Kind: Exit}},
		{"q", "q", Modifiers{}, Intent{Kind: Exit}},
		{"uppercase Q is ignored", "Q", Modifiers{}, Intent{Kind: Ignore}},
		{"ctrl+c", "c", Modifiers{Ctrl: true}, Intent{Kind: Exit}},
		{"plain c is ignored", "c", Modifiers{}, Intent{Kind: Ignore}},
		{"1 goes home", "1", Modifiers{}, GoToSection(portfolio.SectionHome)},
		{"3 goes to experience", "3", Modifiers{}, GoToSection(portfolio.SectionExperience)},
		{"6 goes to contact", "6", Modifiers{}, GoToSection(portfolio.SectionContact)},
		{"7 is ignored", "7", Modifiers{}, Intent{Kind: Ignore}},
		{"0 is ignored", "0", Modifiers{}, Intent{Kind: Ignore}},
		{"up", "", Modifiers{Up: true}, Intent{Kind: Previous}},
		{"left", "", Modifiers{Left: true}, Intent{Kind: Previous}},
		{"down", "", Modifiers{Down: true}, Intent{Kind: Next}},
		{"right", "", Modifiers{Right: true}, Intent{Kind: Next}},
		{"h", "h", Modifiers{}, Intent{Kind: Previous}},
		{"k", "k", Modifiers{}, Intent{Kind: Previous}},
		{"l", "l", Modifiers{}, Intent{Kind: Next}},
		{"j", "j", Modifiers{}, Intent{Kind: Next}},
		{"uppercase H", "H", Modifiers{}, Intent{Kind: Previous}},
		{"uppercase L", "L", Modifiers{}, Intent{Kind: Next}},
		{"g", "g", Modifiers{}, Intent{Kind: JumpFirst}},
		{"G", "G", Modifiers{}, Intent{Kind: JumpLast}},
		{"empty", "", Modifiers{}, Intent{Kind: Ignore}},
		{"multi-char", "jj", Modifiers{}, Intent{Kind: Ignore}},
		{"unicode letter", "é", Modifiers{}, Intent{Kind: Ignore}},
		{"ctrl alone", "x", Modifiers{Ctrl: true}, Intent{Kind: Ignore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw, tt.mods)
			if got != tt.want {
				t.Errorf("Decode(%q, %+v) = %v, want %v", tt.raw, tt.mods, got, tt.want)
			}
		})
	}
}

func TestDecodePriority(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		mods     Modifiers
		wantRule string
		want     Kind
	}{
		{"escape beats shortcut", "3", Modifiers{Escape: true}, "exit", Exit},
		{"q beats arrows", "q", Modifiers{Down: true}, "exit", Exit},
		{"shortcut beats arrows", "2", Modifiers{Up: true}, "shortcut", GoTo},
		{"up beats down", "", Modifiers{Up: true, Down: true}, "arrow_previous", Previous},
		{"arrow beats vim key", "j", Modifiers{Left: true}, "arrow_previous", Previous},
		{"ctrl+j is still a vim key", "j", Modifiers{Ctrl: true}, "vim_next", Next},
		{"nothing matches", "z", Modifiers{}, "", Ignore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuleFor(tt.raw, tt.mods); got != tt.wantRule {
				t.Errorf("RuleFor() = %q, want %q", got, tt.wantRule)
			}
			if got := Decode(tt.raw, tt.mods).Kind; got != tt.want {
				t.Errorf("Decode().Kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyWrapAround(t *testing.T) {
	if got := Apply(Intent{Kind: Next}, portfolio.SectionContact, JumpLastContact); got != portfolio.SectionHome {
		t.Errorf("Next from contact = %q, want home", got)
	}
	if got := Apply(Intent{Kind: Previous}, portfolio.SectionHome, JumpLastContact); got != portfolio.SectionContact {
		t.Errorf("Previous from home = %q, want contact", got)
	}
}

func TestApplyFullCycle(t *testing.T) {
	for _, start := range portfolio.Sections() {
		for _, kind := range []Kind{Next, Previous} {
			cur := start
			for i := 0; i < portfolio.Count(); i++ {
				cur = Apply(Intent{Kind: kind}, cur, JumpLastContact)
			}
			if cur != start {
				t.Errorf("%d x %v from %q ended on %q", portfolio.Count(), kind, start, cur)
			}
		}
	}
}

func TestApplyRandomSequencesStayInCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		m := NewMachine(JumpLastContact)
		n := rng.Intn(500)
		for i := 0; i < n; i++ {
			kind := Next
			if rng.Intn(2) == 0 {
				kind = Previous
			}
			m.Dispatch(Intent{Kind: kind})
			idx := portfolio.IndexOf(m.Current())
			if idx < 0 || idx >= portfolio.Count() {
				t.Fatalf("run %d step %d: index %d out of range", run, i, idx)
			}
		}
	}
}

func TestApplyJumps(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		policy JumpLastPolicy
		from   portfolio.Section
		want   portfolio.Section
	}{
		{"jump first", Intent{Kind: JumpFirst}, JumpLastContact, portfolio.SectionSkills, portfolio.SectionHome},
		{"jump last default", Intent{Kind: JumpLast}, JumpLastContact, portfolio.SectionAbout, portfolio.SectionContact},
		{"jump last legacy", Intent{Kind: JumpLast}, JumpLastHome, portfolio.SectionAbout, portfolio.SectionHome},
		{"exit keeps section", Intent{Kind: Exit}, JumpLastContact, portfolio.SectionSkills, portfolio.SectionSkills},
		{"ignore keeps section", Intent{Kind: Ignore}, JumpLastContact, portfolio.SectionProjects, portfolio.SectionProjects},
		{"goto invalid keeps section", GoToSection("nope"), JumpLastContact, portfolio.SectionAbout, portfolio.SectionAbout},
		{"unknown current treated as home", Intent{Kind: Next}, JumpLastContact, "nope", portfolio.SectionAbout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.intent, tt.from, tt.policy); got != tt.want {
				t.Errorf("Apply(%v, %q) = %q, want %q", tt.intent, tt.from, got, tt.want)
			}
		})
	}
}

func TestMachineNextSequence(t *testing.T) {
	m := NewMachine("")
	want := []portfolio.Section{
		portfolio.SectionAbout,
		portfolio.SectionExperience,
		portfolio.SectionSkills,
		portfolio.SectionProjects,
		portfolio.SectionContact,
		portfolio.SectionHome,
	}
	for i, w := range want {
		tr := m.Dispatch(Intent{Kind: Next})
		if tr.To != w || !tr.Changed {
			t.Fatalf("step %d: got %q (changed=%v), want %q", i, tr.To, tr.Changed, w)
		}
	}
}

func TestMachineGoToCurrentIsNoop(t *testing.T) {
	m := NewMachine(JumpLastContact)

	tr := m.Dispatch(Decode("3", Modifiers{}))
	if !tr.Changed || m.Current() != portfolio.SectionExperience {
		t.Fatalf("first '3' should move to experience, got %q", m.Current())
	}

	tr = m.Dispatch(Decode("3", Modifiers{}))
	if tr.Changed {
		t.Error("second '3' should not report a change")
	}
	if m.Current() != portfolio.SectionExperience {
		t.Errorf("current = %q, want experience", m.Current())
	}
}

func TestMachineExit(t *testing.T) {
	m := NewMachine(JumpLastContact)
	tr := m.Dispatch(Decode("q", Modifiers{}))
	if !tr.Exit || tr.Changed {
		t.Errorf("exit transition = %+v", tr)
	}
}

func TestParseJumpLastPolicy(t *testing.T) {
	if p, err := ParseJumpLastPolicy(""); err != nil || p != JumpLastContact {
		t.Errorf("empty policy = (%q, %v)", p, err)
	}
	if p, err := ParseJumpLastPolicy("home"); err != nil || p != JumpLastHome {
		t.Errorf("home policy = (%q, %v)", p, err)
	}
	if _, err := ParseJumpLastPolicy("bottom"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestIntentString(t *testing.T) {
	if s := GoToSection(portfolio.SectionSkills).String(); s != "goto(skills)" {
		t.Errorf("String() = %q", s)
	}
	if s := (Intent{Kind: JumpLast}).String(); s != "jump_last" {
		t.Errorf("String() = %q", s)
	}
	if s := Kind(99).String(); s != "kind(99)" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key      string
		wantRaw  string
		wantMods Modifiers
	}{
		{"j", "j", Modifiers{}},
		{"up", "", Modifiers{Up: true}},
		{"down", "", Modifiers{Down: true}},
		{"left", "", Modifiers{Left: true}},
		{"right", "", Modifiers{Right: true}},
		{"esc", "", Modifiers{Escape: true}},
		{"ctrl+c", "c", Modifiers{Ctrl: true}},
		{"ctrl+", "ctrl+", Modifiers{}},
		{"alt+j", "alt+j", Modifiers{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			raw, mods := ParseKey(tt.key)
			if raw != tt.wantRaw || mods != tt.wantMods {
				t.Errorf("ParseKey(%q) = (%q, %+v), want (%q, %+v)", tt.key, raw, mods, tt.wantRaw, tt.wantMods)
			}
		})
	}
}

func TestDecodeKey(t *testing.T) {
	tests := map[string]Kind{
		"ctrl+c": Exit,
		"esc":    Exit,
		"q":      Exit,
		"right":  Next,
		"left":   Previous,
		"4":      GoTo,
		"G":      JumpLast,
		"alt+j":  Ignore,
		"enter":  Ignore,
	}
	for key, want := range tests {
		if got := DecodeKey(key).Kind; got != want {
			t.Errorf("DecodeKey(%q) = %v, want %v", key, got, want)
		}
	}
}
