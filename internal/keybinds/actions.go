package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal     Context = "global"     // Available everywhere
	ContextNavigation Context = "navigation" // Main portfolio view
	ContextHelp       Context = "help"       // Help overlay
)

const (
	// Section navigation. These keys are owned by the navigation decoder;
	// the registry only carries them so the footer and help can list them.
	ActionNextSection     Action = "next_section"
	ActionPreviousSection Action = "previous_section"
	ActionGoToSection     Action = "goto_section"
	ActionFirstSection    Action = "first_section"
	ActionLastSection     Action = "last_section"
	ActionQuit            Action = "quit"

	// Panel actions
	ActionScrollUp   Action = "scroll_up"   // Scroll panel up one line
	ActionScrollDown Action = "scroll_down" // Scroll panel down one line
	ActionPageUp     Action = "page_up"     // Scroll panel up one page
	ActionPageDown   Action = "page_down"   // Scroll panel down one page
	ActionCopyEmail  Action = "copy_email"  // Copy the contact email to the clipboard

	// Help overlay
	ActionToggleHelp Action = "toggle_help"
	ActionCloseHelp  Action = "close_help"
)

// navigationActions are the actions the decoder handles
var navigationActions = map[Action]bool{
	ActionNextSection:     true,
	ActionPreviousSection: true,
	ActionGoToSection:     true,
	ActionFirstSection:    true,
	ActionLastSection:     true,
	ActionQuit:            true,
}

// actionOrder is the order legends and the keys table list actions in
var actionOrder = []Action{
	ActionNextSection,
	ActionPreviousSection,
	ActionGoToSection,
	ActionFirstSection,
	ActionLastSection,
	ActionScrollUp,
	ActionScrollDown,
	ActionPageUp,
	ActionPageDown,
	ActionCopyEmail,
	ActionToggleHelp,
	ActionCloseHelp,
	ActionQuit,
}

// knownActions lists every action a config file may reference
var knownActions = func() map[Action]bool {
	m := make(map[Action]bool, len(actionOrder))
	for _, a := range actionOrder {
		m[a] = true
	}
	return m
}()

// IsNavigation reports whether a is handled by the navigation decoder
func (a Action) IsNavigation() bool {
	return navigationActions[a]
}

// Known reports whether a is a defined action
func (a Action) Known() bool {
	return knownActions[a]
}

// Description returns the short help text for an action
func (a Action) Description() string {
	switch a {
	case ActionNextSection:
		return "next section"
	case ActionPreviousSection:
		return "previous section"
	case ActionGoToSection:
		return "jump to section"
	case ActionFirstSection:
		return "first section"
	case ActionLastSection:
		return "last section"
	case ActionQuit:
		return "quit"
	case ActionScrollUp:
		return "scroll up"
	case ActionScrollDown:
		return "scroll down"
	case ActionPageUp:
		return "page up"
	case ActionPageDown:
		return "page down"
	case ActionCopyEmail:
		return "copy email"
	case ActionToggleHelp:
		return "help"
	case ActionCloseHelp:
		return "close help"
	}
	return string(a)
}
