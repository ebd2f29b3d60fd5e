package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNavigationBindings(r)
	registerPanelBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all views
func registerGlobalBindings(r *Registry) {
	r.RegisterMultiple(ContextGlobal, []string{"q", "esc", "ctrl+c"}, ActionQuit)
	r.Register(ContextGlobal, "?", ActionToggleHelp)
}

// registerNavigationBindings mirrors the decoder rules for the legend
func registerNavigationBindings(r *Registry) {
	r.RegisterMultiple(ContextNavigation, []string{"right", "down", "l", "j"}, ActionNextSection)
	r.RegisterMultiple(ContextNavigation, []string{"left", "up", "h", "k"}, ActionPreviousSection)
	r.RegisterMultiple(ContextNavigation, []string{"1", "2", "3", "4", "5", "6"}, ActionGoToSection)
	r.Register(ContextNavigation, "g", ActionFirstSection)
	r.Register(ContextNavigation, "G", ActionLastSection)
}

// registerPanelBindings sets up scrolling and clipboard keys for the content panel
func registerPanelBindings(r *Registry) {
	r.Register(ContextNavigation, "ctrl+y", ActionScrollUp)
	r.Register(ContextNavigation, "ctrl+e", ActionScrollDown)
	r.RegisterMultiple(ContextNavigation, []string{"pgup", "ctrl+u"}, ActionPageUp)
	r.RegisterMultiple(ContextNavigation, []string{"pgdown", "ctrl+d"}, ActionPageDown)
	r.Register(ContextNavigation, "y", ActionCopyEmail)
}

// registerHelpBindings closes the overlay before the decoder sees the key
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"?", "esc", "enter"}, ActionCloseHelp)
}
