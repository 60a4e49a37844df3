// Package config loads debug menu settings from a TOML or YAML file.
//
// # Resolution
//
// Load uses the given path, or ~/.config/debugmenu/config.toml when the path
// is empty. A missing file is not an error: Default is returned instead.
// Fields left out of the file keep their defaults.
//
// # Format
//
//	style = "gta"
//	align = "right"
//	focus_height = 0.4
//	menu_size_item = true
//	save_file = "~/.local/share/debugmenu/overrides.dmenu"
//
//	[screen]
//	width = 1920
//	height = 1080
//
//	[arena]
//	items = 1024
//
//	[keys]
//	next_long = ["PgDn", "Right"]
//
//	[[override]]
//	path = "Cheats/God Mode"
//	value = "True"
//
// The same keys are accepted in YAML, with overrides listed under
// "overrides". Action and button names are those of debugmenu.ParseAction
// and debugmenu.ParseButton.
//
// # Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//		return err
//	}
//	menu, err := cfg.NewMenu()
//	// build the tree, then
//	menu.ApplyOverrides(cfg.Overrides)
package config
