package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader reads keymap override files. JSON, TOML, and YAML are
// supported, chosen by file extension.
type Loader struct {
	searchPaths []string
}

// NewLoader creates a loader with no search paths.
func NewLoader() *Loader {
	return &Loader{}
}

// AddSearchPath adds a directory to scan for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// fileConfig is the on-disk structure of a keymap file.
type fileConfig struct {
	Name     string      `json:"name" toml:"name" yaml:"name"`
	Tier     string      `json:"tier" toml:"tier" yaml:"tier"`
	Bindings []fileEntry `json:"bindings" toml:"bindings" yaml:"bindings"`
}

type fileEntry struct {
	Keys   string `json:"keys" toml:"keys" yaml:"keys"`
	Action string `json:"action,omitempty" toml:"action,omitempty" yaml:"action,omitempty"`
	When   string `json:"when,omitempty" toml:"when,omitempty" yaml:"when,omitempty"`
	Unbind bool   `json:"unbind,omitempty" toml:"unbind,omitempty" yaml:"unbind,omitempty"`
}

// LoadFile reads one keymap file into a Source. The source is not yet
// parsed into bindings; the Builder does that and reports entry-level
// errors.
func (l *Loader) LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading keymap file: %w", err)
	}
	return l.decode(path, filepath.Ext(path), data)
}

// LoadReader reads a keymap from r in the given format ("json",
// "toml", or "yaml"). The name is used for diagnostics.
func (l *Loader) LoadReader(name, format string, r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("reading keymap: %w", err)
	}
	return l.decode(name, "."+format, data)
}

func (l *Loader) decode(name, ext string, data []byte) (Source, error) {
	var cfg fileConfig
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Source{}, fmt.Errorf("unsupported keymap format %q", ext)
	}
	if err != nil {
		return Source{}, fmt.Errorf("decoding keymap %s: %w", name, err)
	}

	tier := TierUser
	if cfg.Tier != "" {
		tier, err = TierFromName(cfg.Tier)
		if err != nil {
			return Source{}, fmt.Errorf("keymap %s: %w", name, err)
		}
	}

	srcName := cfg.Name
	if srcName == "" {
		srcName = name
	}

	entries := make([]Entry, 0, len(cfg.Bindings))
	for _, fe := range cfg.Bindings {
		entries = append(entries, Entry{
			Keys:   fe.Keys,
			Action: fe.Action,
			When:   fe.When,
			Unbind: fe.Unbind,
		})
	}

	return Source{Name: srcName, Tier: tier, Entries: entries}, nil
}

// LoadAll scans the search paths for keymap files and loads each one.
// A malformed file is reported in the returned error slice and
// skipped, never fatal: the remaining valid sources still load.
// Files are loaded in lexical order per directory for determinism.
func (l *Loader) LoadAll() ([]Source, []error) {
	var sources []Source
	var errs []error

	for _, dir := range l.searchPaths {
		var paths []string
		for _, pat := range []string{"*.json", "*.toml", "*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pat))
			if err != nil {
				continue
			}
			paths = append(paths, matches...)
		}
		sort.Strings(paths)

		for _, path := range paths {
			src, err := l.LoadFile(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			sources = append(sources, src)
		}
	}

	return sources, errs
}
