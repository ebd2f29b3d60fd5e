package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// ConfigVersion is written by ExportDefaults
const ConfigVersion = "1.0"

// Config represents the user's keybinding configuration.
// Each section maps an action name to a comma separated key list,
// e.g. {"navigation": {"copy_email": "y,c"}}.
type Config struct {
	Version    string            `json:"version"`
	Global     map[string]string `json:"global,omitempty"`
	Navigation map[string]string `json:"navigation,omitempty"`
	Help       map[string]string `json:"help,omitempty"`
}

// sections pairs each config section with its context
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:     c.Global,
		ContextNavigation: c.Navigation,
		ContextHelp:       c.Help,
	}
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// splitKeys parses "a, b,c" into its keys
func splitKeys(list string) []string {
	var keys []string
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ApplyConfig applies user configuration to a registry.
// A configured action replaces every default key of that action in the
// same context.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		if len(section) == 0 {
			continue
		}

		owner := make(map[string]Action)
		actions := make([]string, 0, len(section))
		for name := range section {
			actions = append(actions, name)
		}
		sort.Strings(actions)

		for _, name := range actions {
			action := Action(name)
			if err := ValidateAction(name); err != nil {
				return fmt.Errorf("%s: %w", context, err)
			}

			keys := splitKeys(section[name])
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("%s.%s: %w", context, name, err)
				}
				if prev, ok := owner[key]; ok {
					return fmt.Errorf("%s: key %q bound to both %s and %s", context, key, prev, action)
				}
				owner[key] = action
			}

			for _, old := range registry.keysFor(context, action) {
				registry.Unregister(context, old)
			}
			registry.RegisterMultiple(context, keys, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default
// registry. The returned config is nil when no file was read.
func LoadOrDefault(configPath string) (*Registry, *Config, error) {
	registry := NewDefaultRegistry()
	if configPath == "" {
		return registry, nil, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return registry, nil, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	return registry, config, nil
}

// ExportDefaults exports default keybindings as a config file
func ExportDefaults() *Config {
	return ExportRegistry(NewDefaultRegistry())
}

// ExportRegistry converts a registry back into the config file layout
func ExportRegistry(registry *Registry) *Config {
	config := &Config{Version: ConfigVersion}
	out := map[Context]*map[string]string{
		ContextGlobal:     &config.Global,
		ContextNavigation: &config.Navigation,
		ContextHelp:       &config.Help,
	}

	for context, dst := range out {
		grouped := make(map[Action][]string)
		for key, action := range registry.bindings[context] {
			grouped[action] = append(grouped[action], key)
		}
		if len(grouped) == 0 {
			continue
		}
		*dst = make(map[string]string, len(grouped))
		for action, keys := range grouped {
			sortKeys(keys)
			(*dst)[string(action)] = strings.Join(keys, ",")
		}
	}

	return config
}
