package navigation

import (
	"fmt"

	"github.com/studiowebux/termfolio/internal/portfolio"
)

// Kind is the closed set of navigation intents
type Kind int

const (
	Ignore Kind = iota
	Next
	Previous
	GoTo
	JumpFirst
	JumpLast
	Exit
)

var kindNames = map[Kind]string{
	Ignore:    "ignore",
	Next:      "next",
	Previous:  "previous",
	GoTo:      "goto",
	JumpFirst: "jump_first",
	JumpLast:  "jump_last",
	Exit:      "exit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Intent is a decoded navigation command. Target is only set for GoTo.
type Intent struct {
	Kind   Kind
	Target portfolio.Section
}

func (i Intent) String() string {
	if i.Kind == GoTo {
		return fmt.Sprintf("goto(%s)", i.Target)
	}
	return i.Kind.String()
}

// GoToSection builds a GoTo intent
func GoToSection(s portfolio.Section) Intent {
	return Intent{Kind: GoTo, Target: s}
}
