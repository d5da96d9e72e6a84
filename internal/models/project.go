package models

// Project is a registered directory plus the metadata needed to launch it.
// Projects are the tiles shown on the launcher board.
type Project struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Path           string `yaml:"path" json:"path"`
	Command        string `yaml:"command" json:"command"`
	IconPath       string `yaml:"icon,omitempty" json:"icon,omitempty"`
	RunAsAdmin     bool   `yaml:"run_as_admin" json:"run_as_admin"`
	StartMinimized bool   `yaml:"start_minimized" json:"start_minimized"`
}

// ProjectFields holds every user-editable attribute of a Project.
// The identifier is not editable.
type ProjectFields struct {
	Name           string
	Path           string
	Command        string
	IconPath       string
	RunAsAdmin     bool
	StartMinimized bool
}

// Fields returns the editable attributes of the project.
func (p Project) Fields() ProjectFields {
	return ProjectFields{
		Name:           p.Name,
		Path:           p.Path,
		Command:        p.Command,
		IconPath:       p.IconPath,
		RunAsAdmin:     p.RunAsAdmin,
		StartMinimized: p.StartMinimized,
	}
}

// Apply overwrites the editable attributes of the project with f.
func (p *Project) Apply(f ProjectFields) {
	p.Name = f.Name
	p.Path = f.Path
	p.Command = f.Command
	p.IconPath = f.IconPath
	p.RunAsAdmin = f.RunAsAdmin
	p.StartMinimized = f.StartMinimized
}

// ShortID returns the first 8 characters of the identifier for display.
func (p Project) ShortID() string {
	if len(p.ID) <= 8 {
		return p.ID
	}
	return p.ID[:8]
}

// GetID returns the identifier, used by quiet output modes.
func (p Project) GetID() string {
	return p.ID
}
