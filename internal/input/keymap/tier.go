package keymap

import "fmt"

// Tier is the provenance class of a binding's source. Tiers are totally
// ordered; a lower ordinal means higher precedence, so user overrides
// outrank plugin bindings, which outrank base profiles, which outrank
// built-in defaults.
type Tier uint8

const (
	// TierUser holds user override bindings.
	TierUser Tier = iota

	// TierPlugin holds bindings registered by plugins.
	TierPlugin

	// TierBase holds base profile bindings shipped with a host
	// configuration (for example an editing-mode profile).
	TierBase

	// TierDefault holds the built-in defaults.
	TierDefault
)

// Outranks returns true if t has strictly higher precedence than other.
func (t Tier) Outranks(other Tier) bool {
	return t < other
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierUser:
		return "user"
	case TierPlugin:
		return "plugin"
	case TierBase:
		return "base"
	case TierDefault:
		return "default"
	default:
		return fmt.Sprintf("tier(%d)", t)
	}
}

// TierFromName returns the tier for a given name.
func TierFromName(name string) (Tier, error) {
	switch name {
	case "user":
		return TierUser, nil
	case "plugin":
		return TierPlugin, nil
	case "base":
		return TierBase, nil
	case "default":
		return TierDefault, nil
	default:
		return 0, fmt.Errorf("unknown tier %q", name)
	}
}
