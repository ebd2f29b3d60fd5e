package keybinds

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRegistryMatch(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name    string
		context Context
		key     string
		want    Action
		found   bool
	}{
		{"navigation binding", ContextNavigation, "y", ActionCopyEmail, true},
		{"falls back to global", ContextNavigation, "?", ActionToggleHelp, true},
		{"help overrides global", ContextHelp, "?", ActionCloseHelp, true},
		{"help esc closes overlay", ContextHelp, "esc", ActionCloseHelp, true},
		{"quit from help via global", ContextHelp, "q", ActionQuit, true},
		{"unbound", ContextNavigation, "z", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Match(tt.context, tt.key)
			if got != tt.want || ok != tt.found {
				t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestRegistryGetBindingSorted(t *testing.T) {
	r := NewDefaultRegistry()

	got := r.GetBinding(ContextNavigation, ActionNextSection)
	want := []string{"j", "l", "down", "right"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetBinding() = %v, want %v", got, want)
	}

	if s := r.GetBindingString(ContextNavigation, ActionPageDown); s != "ctrl+d/pgdown" {
		t.Errorf("GetBindingString() = %q", s)
	}
	if s := r.GetBindingString(ContextNavigation, ActionToggleHelp); s != "?" {
		t.Errorf("global fallback = %q", s)
	}
	if s := r.GetBindingString(ContextHelp, ActionCopyEmail); s != "unbound" {
		t.Errorf("unbound action = %q", s)
	}
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	r := NewDefaultRegistry()
	c := r.Clone()
	c.Register(ContextNavigation, "y", ActionScrollDown)

	if a, _ := r.Match(ContextNavigation, "y"); a != ActionCopyEmail {
		t.Errorf("original changed to %q", a)
	}
}

func TestListBindingsIncludesGlobal(t *testing.T) {
	bindings := NewDefaultRegistry().ListBindings(ContextHelp)
	if len(bindings) != 7 {
		t.Fatalf("len = %d, want 7", len(bindings))
	}
	if bindings[0].Context != ContextHelp || bindings[len(bindings)-1].Context != ContextGlobal {
		t.Errorf("context order = %s ... %s", bindings[0].Context, bindings[len(bindings)-1].Context)
	}
}

func TestApplyConfigReplacesKeys(t *testing.T) {
	r := NewDefaultRegistry()
	err := ApplyConfig(r, &Config{
		Navigation: map[string]string{"copy_email": "c, e"},
	})
	if err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	if r.HasBinding(ContextNavigation, "y") {
		t.Error("default key y should be replaced")
	}
	if a, _ := r.Match(ContextNavigation, "e"); a != ActionCopyEmail {
		t.Errorf("e = %q", a)
	}
}

func TestApplyConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"unknown action", &Config{Global: map[string]string{"explode": "x"}}},
		{"empty modifier", &Config{Navigation: map[string]string{"copy_email": "ctrl+"}}},
		{"duplicate key", &Config{Navigation: map[string]string{"copy_email": "c", "scroll_down": "c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyConfig(NewDefaultRegistry(), tt.config); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	r, cfg, err := LoadOrDefault(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != nil {
		t.Error("no config expected for a missing file")
	}
	if a, _ := r.Match(ContextNavigation, "y"); a != ActionCopyEmail {
		t.Error("expected defaults for a missing file")
	}

	path := filepath.Join(dir, "keybinds.json")
	if err := os.WriteFile(path, []byte(`{"version":"1.0","navigation":{"copy_email":"c"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	r, cfg, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg == nil || cfg.Version != "1.0" {
		t.Errorf("config = %+v", cfg)
	}
	if a, _ := r.Match(ContextNavigation, "c"); a != ActionCopyEmail {
		t.Errorf("c = %q", a)
	}

	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestLoadConfigAllowsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	data := `{
  // muscle memory from another tool
  "version": "1.0",
  "global": {"toggle_help": "?,f1",},
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Global["toggle_help"] != "?,f1" {
		t.Errorf("toggle_help = %q", cfg.Global["toggle_help"])
	}
}

func TestExportDefaultsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keybinds.json")
	if err := SaveConfig(ExportDefaults(), path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Version != ConfigVersion {
		t.Errorf("Version = %q", loaded.Version)
	}
	if loaded.Navigation["page_down"] != "ctrl+d,pgdown" {
		t.Errorf("page_down = %q", loaded.Navigation["page_down"])
	}

	r := NewRegistry()
	if err := ApplyConfig(r, loaded); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if !reflect.DeepEqual(r.bindings, NewDefaultRegistry().bindings) {
		t.Error("exported defaults do not rebuild the default registry")
	}
}

func TestGrouped(t *testing.T) {
	groups := NewDefaultRegistry().Grouped(ContextHelp)
	if len(groups) != 1 {
		t.Fatalf("len = %d, want 1", len(groups))
	}
	if groups[0].Action != ActionCloseHelp || !reflect.DeepEqual(groups[0].Keys, []string{"?", "enter", "esc"}) {
		t.Errorf("help group = %+v", groups[0])
	}

	nav := NewDefaultRegistry().Grouped(ContextNavigation)
	if nav[0].Action != ActionNextSection {
		t.Errorf("first navigation action = %s", nav[0].Action)
	}
	for _, g := range nav {
		if g.Action == ActionQuit {
			t.Error("global bindings should not be grouped under navigation")
		}
	}
}
