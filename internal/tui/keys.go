package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tiles/internal/config"
)

// KeyMap holds the bindings shown on the help screen and status bar.
// Handlers compare key strings against config.KeyMappings directly; the
// bindings carry the labels.
type KeyMap struct {
	Launch    key.Binding
	Test      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Icon      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding

	Open    key.Binding
	Copy    key.Binding
	Readme  key.Binding
	History key.Binding

	Save key.Binding

	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// HelpGroup is one titled column of the help screen
type HelpGroup struct {
	Title    string
	Bindings []key.Binding
}

// NewKeyMap builds bindings from the configured key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	bind := func(desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	}

	return KeyMap{
		Launch:    bind("launch", km.LaunchProject),
		Test:      bind("test launch", km.TestLaunch),
		Add:       bind("add project", km.AddProject),
		Edit:      bind("settings", km.EditProject),
		Delete:    bind("delete", km.DeleteProject),
		Icon:      bind("change icon", km.ChangeIcon),
		MoveLeft:  bind("move tile left", km.MoveTileLeft),
		MoveRight: bind("move tile right", km.MoveTileRight),

		Open:    bind("open folder", km.OpenDirectory),
		Copy:    bind("copy path", km.CopyPath),
		Readme:  bind("view README", km.ViewReadme),
		History: bind("launch history", km.ViewHistory),

		Save: bind("save form", km.SaveForm),

		Left:  bind("previous tile", km.PrevTile, "left"),
		Right: bind("next tile", km.NextTile, "right"),
		Up:    bind("row up", km.TileUp, "up"),
		Down:  bind("row down", km.TileDown, "down"),

		Refresh: bind("reload file", km.Refresh),
		Help:    bind("help", km.ShowHelp),
		Quit:    bind("quit", km.Quit, "ctrl+c"),
	}
}

// HelpGroups returns the bindings grouped for the help screen
func (k KeyMap) HelpGroups() []HelpGroup {
	return []HelpGroup{
		{Title: "Tiles", Bindings: []key.Binding{k.Launch, k.Test, k.Add, k.Edit, k.Delete, k.Icon, k.MoveLeft, k.MoveRight}},
		{Title: "Actions", Bindings: []key.Binding{k.Open, k.Copy, k.Readme, k.History}},
		{Title: "Navigation", Bindings: []key.Binding{k.Left, k.Right, k.Up, k.Down}},
		{Title: "Other", Bindings: []key.Binding{k.Save, k.Refresh, k.Help, k.Quit}},
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}
