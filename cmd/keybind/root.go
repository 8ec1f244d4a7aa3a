package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/logger"
	"github.com/dshills/keybind/internal/plugin"
)

var (
	keymapPaths []string
	pluginPaths []string
	logLevel    string

	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "keybind",
	Short: "Keybinding resolution engine - inspect, validate, and probe binding tables",
	Long: `keybind loads layered keybinding sources (defaults, config files,
Lua plugin scripts, user overrides) and resolves typed key sequences
against them.

Sources layer by tier: user overrides plugin, plugin overrides base,
base overrides the built-in defaults. Within a tier the binding added
last wins.

Examples:
  keybind resolve ctrl-s --context editor-focus
  keybind list --tier user
  keybind check ~/.config/keybind/*.toml
  keybind try --keymap ~/.config/keybind`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(logLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&keymapPaths, "keymap", "k", nil, "Keymap file or directory to load (can specify multiple)")
	rootCmd.PersistentFlags().StringSliceVarP(&pluginPaths, "plugin", "p", nil, "Lua binding script or directory to load (can specify multiple)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (empty disables logging)")
}

// loadSources assembles the layered source list: built-in defaults
// first, then keymap files, then plugin scripts. Malformed files are
// logged and skipped.
func loadSources() []keymap.Source {
	sources := []keymap.Source{keymap.DefaultSource()}

	loader := keymap.NewLoader()
	for _, path := range keymapPaths {
		info, err := os.Stat(path)
		if err != nil {
			log.Warn("skipping keymap path", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		if info.IsDir() {
			loader.AddSearchPath(path)
			continue
		}
		src, err := loader.LoadFile(path)
		if err != nil {
			log.Warn("skipping keymap file", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		sources = append(sources, src)
	}

	dirSources, errs := loader.LoadAll()
	for _, err := range errs {
		log.Warn("skipping keymap file", "error", err)
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	sources = append(sources, dirSources...)

	for _, path := range pluginPaths {
		info, err := os.Stat(path)
		if err != nil {
			log.Warn("skipping plugin path", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		if info.IsDir() {
			dirSrcs, errs := plugin.LoadDir(path)
			for _, err := range errs {
				log.Warn("skipping plugin script", "error", err)
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
			sources = append(sources, dirSrcs...)
			continue
		}
		src, err := plugin.LoadScript(path)
		if err != nil {
			log.Warn("skipping plugin script", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		sources = append(sources, src)
	}

	return sources
}

// buildStore compiles the loaded sources, logging sources that fail.
func buildStore() *keymap.Store {
	store, errs := keymap.BuildPartial(loadSources()...)
	for _, err := range errs {
		log.Warn("source failed to compile", "error", err)
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	log.Info("store built", "bindings", store.Len())
	return store
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
