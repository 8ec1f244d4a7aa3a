package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

func TestManagerCurrentNeverNil(t *testing.T) {
	m := NewManager(nil)
	if m.Current() == nil {
		t.Fatal("Current() = nil, want empty store")
	}
	if got := m.Current().Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestManagerSwap(t *testing.T) {
	first := storeOf(t, bind("ctrl-s", "file.save", TierDefault))
	second := storeOf(t, bind("ctrl-s", "file.saveAll", TierUser))

	m := NewManager(first)
	prev := m.Swap(second)
	if prev != first {
		t.Error("Swap did not return the previous store")
	}
	if m.Current() != second {
		t.Error("Current() is not the swapped store")
	}

	matches, _ := m.Resolve(key.MustParseSequence("ctrl-s"), when.NewContextSet())
	assertActions(t, matches, "file.saveAll")
}

func TestManagerSnapshotSurvivesSwap(t *testing.T) {
	first := storeOf(t, bind("ctrl-s", "file.save", TierDefault))
	m := NewManager(first)

	snap := m.Current()
	m.Swap(storeOf(t, bind("ctrl-s", "file.saveAll", TierUser)))

	// Resolution against the snapshot reflects the old bindings.
	matches, _ := snap.Resolve(key.MustParseSequence("ctrl-s"), when.NewContextSet())
	assertActions(t, matches, "file.save")
}

func TestManagerReload(t *testing.T) {
	m := NewManager(nil)

	errs := m.Reload(Source{
		Name: "user",
		Tier: TierUser,
		Entries: []Entry{
			{Keys: "ctrl-p", Action: "palette.toggle"},
		},
	})
	if len(errs) != 0 {
		t.Fatalf("Reload() errors = %v", errs)
	}

	matches, _ := m.Resolve(key.MustParseSequence("ctrl-p"), when.NewContextSet())
	assertActions(t, matches, "palette.toggle")
}

func TestManagerReloadSkipsBadSource(t *testing.T) {
	m := NewManager(nil)

	errs := m.Reload(
		Source{Name: "broken", Tier: TierUser, Entries: []Entry{{Keys: "hyper-x", Action: "x"}}},
		Source{Name: "good", Tier: TierBase, Entries: []Entry{{Keys: "ctrl-p", Action: "palette.toggle"}}},
	)
	if len(errs) != 1 {
		t.Fatalf("Reload() errors = %v, want 1", errs)
	}
	var berr *BuildError
	if !errors.As(errs[0], &berr) {
		t.Errorf("error = %v, want *BuildError", errs[0])
	}

	matches, _ := m.Resolve(key.MustParseSequence("ctrl-p"), when.NewContextSet())
	assertActions(t, matches, "palette.toggle")
}

func TestManagerReloadAllFailedKeepsPrevious(t *testing.T) {
	m := NewManager(storeOf(t, bind("ctrl-s", "file.save", TierDefault)))
	before := m.Current()

	errs := m.Reload(
		Source{Name: "broken", Tier: TierUser, Entries: []Entry{{Keys: "", Action: "x"}}},
	)
	if len(errs) != 2 {
		t.Fatalf("Reload() errors = %v, want source error plus ErrNoValidSources", errs)
	}
	found := false
	for _, err := range errs {
		if errors.Is(err, ErrNoValidSources) {
			found = true
		}
	}
	if !found {
		t.Error("errors do not include ErrNoValidSources")
	}
	if m.Current() != before {
		t.Error("store was replaced despite no valid sources")
	}
}
