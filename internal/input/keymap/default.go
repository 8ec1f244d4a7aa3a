package keymap

// DefaultSource returns the built-in binding table at TierDefault.
// Hosts pass it as the first (lowest-precedence) source to the Builder
// so every other layer can override or unbind individual entries.
func DefaultSource() Source {
	return Source{
		Name: "default",
		Tier: TierDefault,
		Entries: []Entry{
			// Navigation
			{Keys: "up", Action: "nav.up"},
			{Keys: "down", Action: "nav.down"},
			{Keys: "left", Action: "nav.left"},
			{Keys: "right", Action: "nav.right"},
			{Keys: "home", Action: "nav.lineStart"},
			{Keys: "end", Action: "nav.lineEnd"},
			{Keys: "ctrl-home", Action: "nav.documentStart"},
			{Keys: "ctrl-end", Action: "nav.documentEnd"},
			{Keys: "pageup", Action: "nav.pageUp"},
			{Keys: "pagedown", Action: "nav.pageDown"},

			// Files
			{Keys: "ctrl-s", Action: "file.save", When: "editor-focus"},
			{Keys: "ctrl-shift-s", Action: "file.saveAs", When: "editor-focus"},
			{Keys: "ctrl-o", Action: "file.open"},
			{Keys: "ctrl-n", Action: "file.new"},
			{Keys: "ctrl-w", Action: "file.close"},

			// Editing
			{Keys: "ctrl-z", Action: "edit.undo", When: "editor-focus && !readonly"},
			{Keys: "ctrl-shift-z", Action: "edit.redo", When: "editor-focus && !readonly"},
			{Keys: "ctrl-x", Action: "edit.cut", When: "editor-focus && !readonly"},
			{Keys: "ctrl-c", Action: "edit.copy", When: "editor-focus"},
			{Keys: "ctrl-v", Action: "edit.paste", When: "editor-focus && !readonly"},
			{Keys: "ctrl-a", Action: "edit.selectAll", When: "editor-focus"},

			// Search
			{Keys: "ctrl-f", Action: "search.find"},
			{Keys: "f3", Action: "search.next"},
			{Keys: "shift-f3", Action: "search.prev"},
			{Keys: "ctrl-shift-f", Action: "search.inFiles"},

			// Chorded workspace commands
			{Keys: "ctrl-k ctrl-t", Action: "workspace.newTab"},
			{Keys: "ctrl-k ctrl-w", Action: "workspace.closeAll"},
			{Keys: "ctrl-k ctrl-s", Action: "workspace.saveAll"},
			{Keys: "ctrl-k z", Action: "workspace.zenMode"},

			// Panels
			{Keys: "ctrl-shift-p", Action: "palette.toggle"},
			{Keys: "ctrl-b", Action: "panel.toggleSidebar"},
			{Keys: "escape", Action: "panel.dismiss", When: "popup-visible"},

			// Pointer and pad inputs route through the same table.
			{Keys: "ctrl-wheelup", Action: "view.zoomIn"},
			{Keys: "ctrl-wheeldown", Action: "view.zoomOut"},
			{Keys: "mouseback", Action: "nav.back"},
			{Keys: "mousefwd", Action: "nav.forward"},
			{Keys: "padstart", Action: "palette.toggle"},
		},
	}
}
