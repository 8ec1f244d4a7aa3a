package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/plugin"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate keymap files and plugin scripts",
	Long: `Check loads each file, compiles every entry, and reports errors with
the file and entry that caused them. Unrecognized multi-character key
names parse but are flagged, since no real input will ever produce
them.

Exits nonzero if any file fails to compile.

Examples:
  keybind check ~/.config/keybind/user.toml
  keybind check bindings.json motions.lua`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader := keymap.NewLoader()
	failed := 0

	for _, path := range args {
		var src keymap.Source
		var err error
		if filepath.Ext(path) == ".lua" {
			src, err = plugin.LoadScript(path)
		} else {
			src, err = loader.LoadFile(path)
		}
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
			continue
		}

		if _, err := keymap.Build(src); err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
			continue
		}

		warnings := suspiciousSymbols(src)
		for _, w := range warnings {
			fmt.Printf("%s: warning: %s\n", path, w)
		}
		fmt.Printf("%s: ok (%d entries)\n", path, len(src.Entries))
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}

// suspiciousSymbols flags multi-character key names that parse but are
// not recognized symbols.
func suspiciousSymbols(src keymap.Source) []string {
	var warnings []string
	for _, e := range src.Entries {
		seq, err := key.ParseSequence(e.Keys)
		if err != nil {
			continue
		}
		for _, ks := range seq {
			if _, ok := key.CanonicalSymbol(ks.Sym); !ok {
				warnings = append(warnings, fmt.Sprintf("%q: unrecognized key name %q", e.Keys, ks.Sym))
			}
		}
	}
	return warnings
}
