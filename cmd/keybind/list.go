package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/keymap"
)

var (
	listTier   string
	listAction string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded bindings",
	Long: `List prints every binding in the compiled store, highest precedence
first. Unbind entries are shown as (unbind).

Examples:
  keybind list
  keybind list --tier user
  keybind list --action file.save`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listTier, "tier", "t", "", "Only show bindings from this tier (user, plugin, base, default)")
	listCmd.Flags().StringVarP(&listAction, "action", "a", "", "Only show bindings for this action")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var tierFilter keymap.Tier
	filterByTier := listTier != ""
	if filterByTier {
		var err error
		tierFilter, err = keymap.TierFromName(listTier)
		if err != nil {
			return err
		}
	}

	bindings := buildStore().Bindings()
	sort.SliceStable(bindings, func(i, j int) bool {
		if bindings[i].Tier != bindings[j].Tier {
			return bindings[i].Tier < bindings[j].Tier
		}
		return bindings[i].Sequence.String() < bindings[j].Sequence.String()
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tKEYS\tACTION\tWHEN")
	shown := 0
	for _, b := range bindings {
		if filterByTier && b.Tier != tierFilter {
			continue
		}
		if listAction != "" && b.Action != listAction {
			continue
		}
		action := b.Action
		if b.IsUnbind() {
			action = "(unbind)"
		}
		cond := ""
		if b.Predicate != nil {
			cond = b.Predicate.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Tier, b.Sequence, action, cond)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if shown == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no bindings match the filter")
	}
	return nil
}
