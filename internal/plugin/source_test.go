package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/when"
)

func TestLoadString(t *testing.T) {
	src, err := LoadString("refactor", `
bind("ctrl-shift-r", "refactor.rename", "editor-focus")
bind("ctrl-k r", "refactor.extract")
unbind("ctrl-k ctrl-w")
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if src.Name != "plugin:refactor" {
		t.Errorf("Name = %q, want %q", src.Name, "plugin:refactor")
	}
	if src.Tier != keymap.TierPlugin {
		t.Errorf("Tier = %v, want %v", src.Tier, keymap.TierPlugin)
	}
	if len(src.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(src.Entries))
	}

	if src.Entries[0].When != "editor-focus" {
		t.Errorf("When = %q, want %q", src.Entries[0].When, "editor-focus")
	}
	if !src.Entries[2].Unbind {
		t.Error("third entry should be an unbind")
	}
	if src.Entries[2].Action != "" {
		t.Errorf("unbind entry action = %q, want empty", src.Entries[2].Action)
	}
}

func TestLoadStringResolves(t *testing.T) {
	src, err := LoadString("refactor", `bind("ctrl-shift-r", "refactor.rename")`)
	if err != nil {
		t.Fatal(err)
	}
	store, err := keymap.Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	matches, _ := store.Resolve(key.MustParseSequence("ctrl-shift-r"), when.NewContextSet())
	if len(matches) != 1 || matches[0].Action != "refactor.rename" {
		t.Errorf("Resolve() = %v, want refactor.rename", matches)
	}
}

func TestLoadStringScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"syntax error", `bind("ctrl-s",`},
		{"bad keys", `bind("hyper-x", "a")`},
		{"empty action", `bind("ctrl-s", "")`},
		{"bad predicate", `bind("ctrl-s", "a", "x && y || z")`},
		{"bad unbind keys", `unbind("ctrl-")`},
		{"runtime error", `error("boom")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString("bad", tt.script)
			if err == nil {
				t.Fatal("LoadString() error = nil, want error")
			}
			var serr *ScriptError
			if !errors.As(err, &serr) {
				t.Errorf("error = %v, want *ScriptError", err)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motions.lua")
	script := `bind("g g", "nav.documentStart")`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error = %v", err)
	}
	if src.Name != "plugin:motions" {
		t.Errorf("Name = %q, want %q", src.Name, "plugin:motions")
	}
	if len(src.Entries) != 1 {
		t.Errorf("entries = %d, want 1", len(src.Entries))
	}
}

func TestLoadDirSkipsFailing(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a-good.lua", `bind("ctrl-1", "tab.first")`)
	write("b-bad.lua", `bind("ctrl-", "x")`)
	write("c-good.lua", `bind("ctrl-2", "tab.second")`)

	sources, errs := LoadDir(dir)
	if len(errs) != 1 {
		t.Fatalf("LoadDir errors = %v, want 1", errs)
	}
	if len(sources) != 2 {
		t.Fatalf("LoadDir sources = %d, want 2", len(sources))
	}
	if sources[0].Name != "plugin:a-good" || sources[1].Name != "plugin:c-good" {
		t.Errorf("unexpected order: %q, %q", sources[0].Name, sources[1].Name)
	}
}
