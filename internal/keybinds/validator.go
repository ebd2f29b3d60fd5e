package keybinds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/termfolio/internal/navigation"
	"github.com/studiowebux/termfolio/internal/version"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys map keys that must keep their action in the global context
	reservedKeys map[string]Action

	// overlays are contexts checked before the decoder, so shadowing
	// global and navigation keys there is expected
	overlays map[Context]bool
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuit,
		},
		overlays: map[Context]bool{
			ContextHelp: true,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkUnknownActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkDecoderKeys(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return &ValidationResult{
			Errors: []ValidationError{{
				Type:    "invalid",
				Message: err.Error(),
			}},
			Warnings: []ValidationError{},
		}
	}
	return v.Validate(registry, config)
}

// Validate checks a registry and, when it was loaded from a file, that
// file's format version
func (v *Validator) Validate(registry *Registry, config *Config) *ValidationResult {
	result := v.ValidateRegistry(registry)
	if config != nil && version.IsNewer(config.Version, ConfigVersion) {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:    "warning",
			Key:     "version",
			Message: fmt.Sprintf("file format %s is newer than supported %s", config.Version, ConfigVersion),
		})
	}
	return result
}

// each visits bindings in a stable order
func each(registry *Registry, fn func(context Context, key string, action Action)) {
	contexts := make([]string, 0, len(registry.bindings))
	for c := range registry.bindings {
		contexts = append(contexts, string(c))
	}
	sort.Strings(contexts)

	for _, c := range contexts {
		context := Context(c)
		keys := make([]string, 0, len(registry.bindings[context]))
		for key := range registry.bindings[context] {
			keys = append(keys, key)
		}
		sortKeys(keys)
		for _, key := range keys {
			fn(context, key, registry.bindings[context][key])
		}
	}
}

func (v *Validator) checkUnknownActions(registry *Registry, result *ValidationResult) {
	each(registry, func(context Context, key string, action Action) {
		if !action.Known() {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("unknown action %q", action),
			})
		}
	})
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	each(registry, func(context Context, key string, action Action) {
		want, reserved := v.reservedKeys[key]
		if reserved && context == ContextGlobal && action != want {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     key,
				Message: "reserved key rebound (may cause issues)",
			})
		}
	})
}

// checkDecoderKeys compares bindings with what the navigation decoder does
// with the same key. Outside overlays the decoder runs first, so a panel
// action on a navigation key never fires, and a navigation action on a key
// the decoder ignores is a dead legend entry.
func (v *Validator) checkDecoderKeys(registry *Registry, result *ValidationResult) {
	each(registry, func(context Context, key string, action Action) {
		if v.overlays[context] {
			return
		}
		decoded := navigation.DecodeKey(key).Kind

		switch {
		case action.IsNavigation() && ActionForKind(decoded) != action:
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("%s is not handled by section navigation (decodes to %s)", action, decoded),
			})
		case !action.IsNavigation() && decoded != navigation.Ignore:
			result.Errors = append(result.Errors, ValidationError{
				Type:    "conflict",
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("key is used by section navigation (%s), %s would never fire", decoded, action),
			})
		}
	})
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	each(registry, func(context Context, key string, action Action) {
		if context == ContextGlobal || v.overlays[context] {
			return
		}
		if globalAction, ok := globalBindings[key]; ok && action != globalAction {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
			})
		}
	})
}

// ActionForKind maps a decoded navigation intent to its legend action
func ActionForKind(kind navigation.Kind) Action {
	switch kind {
	case navigation.Next:
		return ActionNextSection
	case navigation.Previous:
		return ActionPreviousSection
	case navigation.GoTo:
		return ActionGoToSection
	case navigation.JumpFirst:
		return ActionFirstSection
	case navigation.JumpLast:
		return ActionLastSection
	case navigation.Exit:
		return ActionQuit
	}
	return ""
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !Action(actionStr).Known() {
		if near, ok := suggestAction(actionStr); ok {
			return fmt.Errorf("unknown action %q (did you mean %s?)", actionStr, near)
		}
		return fmt.Errorf("unknown action %q", actionStr)
	}
	return nil
}

// suggestAction returns the known action closest to a mistyped name
func suggestAction(name string) (Action, bool) {
	names := make([]string, len(actionOrder))
	for i, a := range actionOrder {
		names[i] = string(a)
	}
	matches := fuzzy.Find(strings.ToLower(name), names)
	if len(matches) == 0 {
		return "", false
	}
	return actionOrder[matches[0].Index], true
}
