// Package plugin loads keybinding declarations from Lua scripts.
//
// A script calls two globals:
//
//	bind("ctrl-shift-r", "refactor.rename", "editor-focus")
//	unbind("ctrl-k ctrl-w")
//
// Arguments are validated when the call executes, so a malformed key
// sequence or predicate raises a Lua error at the offending line. Each
// script becomes one source at the plugin tier, ready to hand to the
// keymap builder.
package plugin
