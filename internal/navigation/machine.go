package navigation

import (
	"fmt"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

// JumpLastPolicy selects where the JumpLast intent ("G") lands
type JumpLastPolicy string

const (
	// JumpLastContact jumps to the last catalog entry, as the help text describes
	JumpLastContact JumpLastPolicy = "contact"
	// JumpLastHome reproduces the legacy behaviour where "G" went back to home
	JumpLastHome JumpLastPolicy = "home"
)

// ParseJumpLastPolicy validates a policy name from configuration
func ParseJumpLastPolicy(s string) (JumpLastPolicy, error) {
	switch JumpLastPolicy(s) {
	case JumpLastContact, "":
		return JumpLastContact, nil
	case JumpLastHome:
		return JumpLastHome, nil
	}
	return "", fmt.Errorf("unknown jump-last policy %q (want %q or %q)", s, JumpLastContact, JumpLastHome)
}

func (p JumpLastPolicy) target() portfolio.Section {
	if p == JumpLastHome {
		return portfolio.First()
	}
	return portfolio.Last()
}

// Apply computes the section that follows current under intent.
// An unknown current section is treated as the first catalog entry.
func Apply(intent Intent, current portfolio.Section, policy JumpLastPolicy) portfolio.Section {
	idx := portfolio.IndexOf(current)
	if idx < 0 {
		idx = 0
		current = portfolio.First()
	}
	n := portfolio.Count()

	switch intent.Kind {
	case Next:
		idx++
		if idx == n {
			idx = 0
		}
	case Previous:
		idx--
		if idx == -1 {
			idx = n - 1
		}
	case GoTo:
		if intent.Target.Valid() {
			return intent.Target
		}
		return current
	case JumpFirst:
		return portfolio.First()
	case JumpLast:
		return policy.target()
	default:
		return current
	}

	s, _ := portfolio.At(idx)
	return s
}

// Transition describes the effect of one dispatched intent
type Transition struct {
	Intent  Intent
	From    portfolio.Section
	To      portfolio.Section
	Changed bool
	Exit    bool
}

// Machine holds the current section
type Machine struct {
	current portfolio.Section
	policy  JumpLastPolicy
}

// NewMachine creates a machine positioned on the first section
func NewMachine(policy JumpLastPolicy) *Machine {
	if policy == "" {
		policy = JumpLastContact
	}
	return &Machine{
		current: portfolio.First(),
		policy:  policy,
	}
}

// Current returns the current section
func (m *Machine) Current() portfolio.Section {
	return m.current
}

// Dispatch applies intent and reports what changed
func (m *Machine) Dispatch(intent Intent) Transition {
	t := Transition{
		Intent: intent,
		From:   m.current,
		Exit:   intent.Kind == Exit,
	}
	t.To = Apply(intent, m.current, m.policy)
	t.Changed = t.To != t.From
	m.current = t.To
	return t
}
