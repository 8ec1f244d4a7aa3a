package main

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/when"
	"github.com/dshills/keybind/internal/watcher"
)

var (
	tryContexts []string
	tryWatch    bool
)

var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Interactively probe bindings by pressing keys",
	Long: `Try opens a terminal session where every keystroke, mouse button, and
wheel step is resolved against the loaded bindings. Chord prefixes are
buffered until they complete or fail.

Press ctrl-q to quit.

Examples:
  keybind try --keymap ~/.config/keybind --context editor-focus
  keybind try --watch`,
	Args: cobra.NoArgs,
	RunE: runTry,
}

func init() {
	tryCmd.Flags().StringSliceVarP(&tryContexts, "context", "c", nil, "Active context name (can specify multiple)")
	tryCmd.Flags().BoolVarP(&tryWatch, "watch", "w", false, "Reload bindings when keymap files change")
	rootCmd.AddCommand(tryCmd)
}

func runTry(cmd *cobra.Command, args []string) error {
	mgr := keymap.NewManager(buildStore())

	if tryWatch {
		w, err := watcher.New(func(paths []string) {
			log.Info("binding files changed, reloading", "paths", paths)
			for _, err := range mgr.Reload(loadSources()...) {
				log.Warn("reload", "error", err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
		for _, path := range append(keymapPaths, pluginPaths...) {
			if err := w.Watch(path); err != nil {
				log.Warn("cannot watch path", "path", path, "error", err)
			}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	session := &trySession{
		screen: screen,
		mgr:    mgr,
		active: when.NewContextSet(tryContexts...),
	}
	session.run()
	return nil
}

// trySession holds the interactive prober state. The buffer carries
// the chord prefix typed so far.
type trySession struct {
	screen  tcell.Screen
	mgr     *keymap.Manager
	active  when.ContextSet
	buffer  key.Sequence
	history []string
	buttons tcell.ButtonMask
}

func (s *trySession) run() {
	s.draw("press keys to resolve them")
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return
			}
			if ks, ok := keystrokeFromKey(ev); ok {
				s.feed(ks)
			}
		case *tcell.EventMouse:
			for _, ks := range s.keystrokesFromMouse(ev) {
				s.feed(ks)
			}
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw("")
		}
	}
}

// feed appends a keystroke to the buffer and resolves the result.
func (s *trySession) feed(ks key.Keystroke) {
	s.buffer = s.buffer.Append(ks)
	matches, pending := s.mgr.Resolve(s.buffer, s.active)

	switch {
	case len(matches) > 0:
		b := matches[0]
		s.record(fmt.Sprintf("%s -> %s (%s)", s.buffer, b.Action, b.Tier))
		s.buffer = nil
		s.draw("")
	case pending:
		s.draw(fmt.Sprintf("%s ... (chord pending)", s.buffer))
	default:
		s.record(fmt.Sprintf("%s -> no match", s.buffer))
		s.buffer = nil
		s.draw("")
	}
}

func (s *trySession) record(line string) {
	s.history = append(s.history, line)
	if len(s.history) > 20 {
		s.history = s.history[len(s.history)-20:]
	}
}

func (s *trySession) draw(status string) {
	s.screen.Clear()
	style := tcell.StyleDefault

	drawText(s.screen, 0, 0, style.Bold(true), "keybind try - ctrl-q to quit")
	for i, line := range s.history {
		drawText(s.screen, 0, i+2, style, line)
	}
	if status != "" {
		drawText(s.screen, 0, len(s.history)+3, style.Italic(true), status)
	}
	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// keystrokeFromKey translates a terminal key event. Not every key a
// binding file can name is reachable from a terminal; gamepad symbols
// in particular never arrive here.
func keystrokeFromKey(ev *tcell.EventKey) (key.Keystroke, bool) {
	var mods key.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(key.ModCmd)
	}

	k := ev.Key()
	var sym string
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			sym = "space"
		} else {
			sym = string(unicode.ToLower(r))
			if unicode.IsUpper(ev.Rune()) {
				mods = mods.With(key.ModShift)
			}
		}
	case namedTcellKeys[k] != "":
		// Tab, enter, and backspace share codes with ctrl letters;
		// the named reading wins.
		sym = namedTcellKeys[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		sym = string(rune('a' + k - tcell.KeyCtrlA))
		mods = mods.With(key.ModCtrl)
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		sym = fmt.Sprintf("f%d", int(k-tcell.KeyF1)+1)
	default:
		return key.Keystroke{}, false
	}

	return key.Keystroke{Mods: mods, Sym: sym}, true
}

var namedTcellKeys = map[tcell.Key]string{
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
}

// keystrokesFromMouse translates a mouse event into keystrokes: one
// per wheel step plus one per newly pressed button.
func (s *trySession) keystrokesFromMouse(ev *tcell.EventMouse) []key.Keystroke {
	var mods key.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}

	var out []key.Keystroke
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		out = append(out, key.Keystroke{Mods: mods, Sym: "wheelup"})
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, key.Keystroke{Mods: mods, Sym: "wheeldown"})
	}

	pressed := buttons &^ s.buttons
	s.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	for mask, sym := range mouseButtons {
		if pressed&mask != 0 {
			out = append(out, key.Keystroke{Mods: mods, Sym: sym})
		}
	}
	return out
}

var mouseButtons = map[tcell.ButtonMask]string{
	tcell.Button1: "mouseleft",
	tcell.Button2: "mouseright",
	tcell.Button3: "mousemiddle",
	tcell.Button4: "mouseback",
	tcell.Button5: "mousefwd",
}
