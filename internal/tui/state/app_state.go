package state

import (
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/resolver"
)

// AppState holds the data shown on the board: the ordered project list,
// the last launch of each project and the icon headers loaded for them.
type AppState struct {
	projects     []models.Project
	lastLaunches map[string]*models.Launch
	icons        map[string]resolver.IconInfo
}

// NewAppState creates a new AppState with the given projects.
func NewAppState(projects []models.Project) *AppState {
	s := &AppState{
		lastLaunches: make(map[string]*models.Launch),
		icons:        make(map[string]resolver.IconInfo),
	}
	s.SetProjects(projects)
	return s
}

// Projects returns the ordered project list.
func (s *AppState) Projects() []models.Project {
	return s.projects
}

// SetProjects replaces the project list. Launch and icon entries for
// projects that are gone are dropped.
func (s *AppState) SetProjects(projects []models.Project) {
	if projects == nil {
		projects = []models.Project{}
	}
	s.projects = projects

	live := make(map[string]bool, len(projects))
	for _, p := range projects {
		live[p.ID] = true
	}
	for id := range s.lastLaunches {
		if !live[id] {
			delete(s.lastLaunches, id)
		}
	}
	for id := range s.icons {
		if !live[id] {
			delete(s.icons, id)
		}
	}
}

// Len returns the number of projects.
func (s *AppState) Len() int {
	return len(s.projects)
}

// ProjectAt returns the project at index i.
func (s *AppState) ProjectAt(i int) (models.Project, bool) {
	if i < 0 || i >= len(s.projects) {
		return models.Project{}, false
	}
	return s.projects[i], true
}

// IndexOf returns the position of the project with the given id, or -1.
func (s *AppState) IndexOf(id string) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// LastLaunch returns the most recent launch of a project, or nil.
func (s *AppState) LastLaunch(id string) *models.Launch {
	return s.lastLaunches[id]
}

// SetLastLaunch records the most recent launch of a project.
func (s *AppState) SetLastLaunch(id string, launch *models.Launch) {
	if launch == nil {
		delete(s.lastLaunches, id)
		return
	}
	s.lastLaunches[id] = launch
}

// Icon returns the loaded icon header for a project.
// ok is false when the project has no usable icon.
func (s *AppState) Icon(id string) (resolver.IconInfo, bool) {
	info, ok := s.icons[id]
	return info, ok
}

// SetIcon stores the loaded icon header for a project.
func (s *AppState) SetIcon(id string, info resolver.IconInfo) {
	s.icons[id] = info
}

// ClearIcon forgets the icon of a project so the default glyph is shown.
func (s *AppState) ClearIcon(id string) {
	delete(s.icons, id)
}
