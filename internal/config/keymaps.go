package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	LaunchProject string `yaml:"launch_project"`
	TestLaunch    string `yaml:"test_launch"`
	AddProject    string `yaml:"add_project"`
	EditProject   string `yaml:"edit_project"`
	DeleteProject string `yaml:"delete_project"`
	ChangeIcon    string `yaml:"change_icon"`
	MoveTileLeft  string `yaml:"move_tile_left"`
	MoveTileRight string `yaml:"move_tile_right"`

	// Context actions
	OpenDirectory string `yaml:"open_directory"`
	CopyPath      string `yaml:"copy_path"`
	ViewReadme    string `yaml:"view_readme"`
	ViewHistory   string `yaml:"view_history"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTile string `yaml:"prev_tile"`
	NextTile string `yaml:"next_tile"`
	TileUp   string `yaml:"tile_up"`
	TileDown string `yaml:"tile_down"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		LaunchProject: "enter",
		TestLaunch:    "t",
		AddProject:    "a",
		EditProject:   "e",
		DeleteProject: "d",
		ChangeIcon:    "i",
		MoveTileLeft:  "H",
		MoveTileRight: "L",

		OpenDirectory: "o",
		CopyPath:      "y",
		ViewReadme:    "r",
		ViewHistory:   "s",

		SaveForm: "ctrl+s",

		PrevTile: "h",
		NextTile: "l",
		TileUp:   "k",
		TileDown: "j",

		Refresh:  "R",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}

	fill(&k.LaunchProject, defaults.LaunchProject)
	fill(&k.TestLaunch, defaults.TestLaunch)
	fill(&k.AddProject, defaults.AddProject)
	fill(&k.EditProject, defaults.EditProject)
	fill(&k.DeleteProject, defaults.DeleteProject)
	fill(&k.ChangeIcon, defaults.ChangeIcon)
	fill(&k.MoveTileLeft, defaults.MoveTileLeft)
	fill(&k.MoveTileRight, defaults.MoveTileRight)
	fill(&k.OpenDirectory, defaults.OpenDirectory)
	fill(&k.CopyPath, defaults.CopyPath)
	fill(&k.ViewReadme, defaults.ViewReadme)
	fill(&k.ViewHistory, defaults.ViewHistory)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevTile, defaults.PrevTile)
	fill(&k.NextTile, defaults.NextTile)
	fill(&k.TileUp, defaults.TileUp)
	fill(&k.TileDown, defaults.TileDown)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
