package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

var resolveContexts []string

var resolveCmd = &cobra.Command{
	Use:   "resolve <keys>",
	Short: "Resolve a key sequence against the loaded bindings",
	Long: `Resolve parses a key sequence and reports every binding it matches,
ranked by precedence, plus whether the sequence is a prefix of a
longer chord.

Examples:
  keybind resolve ctrl-s --context editor-focus
  keybind resolve "ctrl-k ctrl-t"
  keybind resolve ctrl-k`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringSliceVarP(&resolveContexts, "context", "c", nil, "Active context name (can specify multiple)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	typed, err := key.ParseSequence(args[0])
	if err != nil {
		return fmt.Errorf("parsing sequence: %w", err)
	}

	store := buildStore()
	active := when.NewContextSet(resolveContexts...)
	matches, pending := store.Resolve(typed, active)

	if len(matches) == 0 && !pending {
		fmt.Printf("%s: no match\n", typed)
		return nil
	}

	for i, b := range matches {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		line := fmt.Sprintf("%s %-8s %s -> %s", marker, b.Tier, b.Sequence, b.Action)
		if b.Predicate != nil {
			line += fmt.Sprintf("  [when %s]", b.Predicate)
		}
		fmt.Println(line)
	}
	if pending {
		fmt.Printf("%s is a prefix of longer chords; more input expected\n", typed)
	}
	return nil
}
