package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/when"
)

// ScriptError wraps a failure while running a binding script.
type ScriptError struct {
	Script string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("plugin script %s: %v", e.Script, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// collector accumulates entries declared by a script. Keys and
// predicates are validated at call time so a bad declaration fails at
// the Lua line that made it, not later during the build.
type collector struct {
	entries []keymap.Entry
}

// bind(keys, action [, when]) declares a binding.
func (c *collector) bind(L *lua.LState) int {
	keys := L.CheckString(1)
	action := L.CheckString(2)
	cond := L.OptString(3, "")

	if action == "" {
		L.ArgError(2, "action cannot be empty")
		return 0
	}
	if _, err := key.ParseSequence(keys); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if cond != "" {
		if _, err := when.Parse(cond); err != nil {
			L.ArgError(3, err.Error())
			return 0
		}
	}

	c.entries = append(c.entries, keymap.Entry{
		Keys:   keys,
		Action: action,
		When:   cond,
	})
	return 0
}

// unbind(keys [, when]) declares the suppression of a binding.
func (c *collector) unbind(L *lua.LState) int {
	keys := L.CheckString(1)
	cond := L.OptString(2, "")

	if _, err := key.ParseSequence(keys); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if cond != "" {
		if _, err := when.Parse(cond); err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
	}

	c.entries = append(c.entries, keymap.Entry{
		Keys:   keys,
		When:   cond,
		Unbind: true,
	})
	return 0
}

// LoadScript runs a Lua binding script and returns its declarations as
// a source at the plugin tier. The source name is derived from the
// file name.
func LoadScript(path string) (keymap.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keymap.Source{}, fmt.Errorf("reading plugin script: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadString(name, string(data))
}

// LoadString runs a Lua binding script held in memory. The name is
// used for diagnostics and becomes the source name.
func LoadString(name, script string) (keymap.Source, error) {
	L := lua.NewState()
	defer L.Close()

	c := &collector{}
	L.SetGlobal("bind", L.NewFunction(c.bind))
	L.SetGlobal("unbind", L.NewFunction(c.unbind))

	if err := L.DoString(script); err != nil {
		return keymap.Source{}, &ScriptError{Script: name, Err: err}
	}

	return keymap.Source{
		Name:    "plugin:" + name,
		Tier:    keymap.TierPlugin,
		Entries: c.entries,
	}, nil
}

// LoadDir runs every *.lua script in dir, in lexical order. A failing
// script is reported and skipped; the remaining sources still load.
func LoadDir(dir string) ([]keymap.Source, []error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return nil, []error{err}
	}

	var sources []keymap.Source
	var errs []error
	for _, path := range paths {
		src, err := LoadScript(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sources = append(sources, src)
	}
	return sources, errs
}
