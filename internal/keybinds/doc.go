/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package maps Bubble Tea key names ("j", "ctrl+c", "pgdown")
to actions within a context. The portfolio view has three contexts:

  - Global: bindings available everywhere (quit, help)
  - Navigation: the main portfolio view
  - Help: the help overlay, consulted before anything else while it is open

Section navigation itself is decided by the navigation decoder, which runs
before the registry. The navigation actions registered here only exist so
the footer legend and help overlay can list them, and the validator checks
that every such binding really decodes to the same intent.

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware key matching with fallback to global
  - Deterministic key ordering for legends

Validator (validator.go):
  - Rejects unknown actions
  - Reports panel actions bound to keys the decoder owns
  - Warns about shadowing and reserved keys

Config (config.go):
  - Loads ~/.config/termfolio/keybinds.json
  - Each section maps an action to a comma separated key list
  - Exports the defaults in the same layout

# Usage

	registry, _, err := keybinds.LoadOrDefault(path)
	if err != nil {
		return err
	}
	if action, ok := registry.Match(keybinds.ContextNavigation, "y"); ok {
		// handle action
	}
*/
package keybinds
