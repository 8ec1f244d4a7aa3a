package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

func TestBuildLayeredSources(t *testing.T) {
	defaults := Source{
		Name: "default",
		Tier: TierDefault,
		Entries: []Entry{
			{Keys: "ctrl-s", Action: "file.save"},
			{Keys: "ctrl-o", Action: "file.open"},
		},
	}
	user := Source{
		Name: "user",
		Tier: TierUser,
		Entries: []Entry{
			{Keys: "ctrl-s", Action: "file.saveAll"},
			{Keys: "ctrl-o", Unbind: true},
		},
	}

	store, err := Build(defaults, user)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if store.Len() != 4 {
		t.Fatalf("Len = %d, want 4", store.Len())
	}

	// Source order and per-source order are preserved.
	bindings := store.Bindings()
	if bindings[0].Tier != TierDefault || bindings[2].Tier != TierUser {
		t.Error("source order not preserved in the store")
	}
	if !bindings[3].IsUnbind() {
		t.Error("unbind entry not preserved")
	}

	// The merged store resolves with user precedence.
	matches, _ := store.Resolve(key.MustParseSequence("ctrl-s"), nil)
	assertActions(t, matches, "file.saveAll", "file.save")
	matches, _ = store.Resolve(key.MustParseSequence("ctrl-o"), nil)
	assertActions(t, matches)
}

func TestBuildPredicates(t *testing.T) {
	store, err := Build(Source{
		Name: "default",
		Tier: TierDefault,
		Entries: []Entry{
			{Keys: "escape", Action: "panel.dismiss", When: "popup-visible"},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	matches, _ := store.Resolve(key.MustParseSequence("escape"), when.NewContextSet("popup-visible"))
	assertActions(t, matches, "panel.dismiss")
	matches, _ = store.Resolve(key.MustParseSequence("escape"), nil)
	assertActions(t, matches)
}

func TestBuildFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{"bad keys", Entry{Keys: "ctrl-", Action: "x"}, key.ErrEmptyKey},
		{"bad modifier", Entry{Keys: "bogus-s", Action: "x"}, nil},
		{"bad predicate", Entry{Keys: "a", Action: "x", When: "a && b || c"}, when.ErrMixedOperators},
		{"no action", Entry{Keys: "a"}, ErrNoAction},
		{"unbind with action", Entry{Keys: "a", Action: "x", Unbind: true}, ErrUnbindWithAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Source{Name: "bad", Tier: TierUser, Entries: []Entry{tt.entry}}
			_, err := Build(src)

			var buildErr *BuildError
			if !errors.As(err, &buildErr) {
				t.Fatalf("Build() error = %v, want *BuildError", err)
			}
			if buildErr.Source != "bad" {
				t.Errorf("BuildError.Source = %q, want %q", buildErr.Source, "bad")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want wrapped %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildPartialSkipsMalformedSource(t *testing.T) {
	good := Source{
		Name:    "default",
		Tier:    TierDefault,
		Entries: []Entry{{Keys: "ctrl-s", Action: "file.save"}},
	}
	bad := Source{
		Name:    "user",
		Tier:    TierUser,
		Entries: []Entry{{Keys: "ctrl-", Action: "broken"}},
	}

	store, errs := BuildPartial(good, bad)
	if len(errs) != 1 {
		t.Fatalf("BuildPartial errors = %v, want exactly 1", errs)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1 (malformed source skipped whole)", store.Len())
	}

	matches, _ := store.Resolve(key.MustParseSequence("ctrl-s"), nil)
	assertActions(t, matches, "file.save")
}
