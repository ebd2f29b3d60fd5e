package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unregister removes a key from a context
func (r *Registry) Unregister(context Context, key string) {
	delete(r.bindings[context], key)
}

// Match attempts to match a key to an action in the given context
// Contexts are checked in priority order: specific context -> global
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// GetBinding returns the key(s) bound to an action in a context, sorted
// by keyOrder so legends render the same way every time
func (r *Registry) GetBinding(context Context, action Action) []string {
	keys := r.keysFor(context, action)
	if len(keys) == 0 && context != ContextGlobal {
		keys = r.keysFor(ContextGlobal, action)
	}
	sortKeys(keys)
	return keys
}

func (r *Registry) keysFor(context Context, action Action) []string {
	var keys []string
	for key, act := range r.bindings[context] {
		if act == action {
			keys = append(keys, key)
		}
	}
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, "/")
}

// ListBindings returns all bindings for a context followed by the global ones
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding
	contexts := []Context{context}
	if context != ContextGlobal {
		contexts = append(contexts, ContextGlobal)
	}

	for _, ctx := range contexts {
		var keys []string
		for key := range r.bindings[ctx] {
			keys = append(keys, key)
		}
		sortKeys(keys)
		for _, key := range keys {
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  r.bindings[ctx][key],
				Context: ctx,
			})
		}
	}

	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}

// Clone creates a deep copy of the registry
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for context, contextBindings := range r.bindings {
		for key, action := range contextBindings {
			clone.Register(context, key, action)
		}
	}
	return clone
}

// keyOrder puts named keys after single characters: arrows, then everything else
func keyOrder(key string) int {
	switch {
	case len([]rune(key)) == 1:
		return 0
	case key == "up" || key == "down" || key == "left" || key == "right":
		return 1
	}
	return 2
}

func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := keyOrder(keys[i]), keyOrder(keys[j])
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})
}

// ActionKeys is one action with every key bound to it in a context
type ActionKeys struct {
	Action Action
	Keys   []string
}

// Grouped lists the actions bound in exactly this context, without the
// global fallback, in display order
func (r *Registry) Grouped(context Context) []ActionKeys {
	var groups []ActionKeys
	for _, action := range actionOrder {
		if keys := r.keysFor(context, action); len(keys) > 0 {
			sortKeys(keys)
			groups = append(groups, ActionKeys{Action: action, Keys: keys})
		}
	}
	return groups
}
