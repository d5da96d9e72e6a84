package models

import "time"

// LaunchStatus describes the outcome of a launch attempt.
type LaunchStatus string

const (
	// LaunchStarted means the shell process was handed to the OS.
	LaunchStarted LaunchStatus = "started"
	// LaunchFailed means the OS refused to start the process.
	LaunchFailed LaunchStatus = "failed"
)

// Launch is one entry of the launch history.
type Launch struct {
	ID          int          `json:"id"`
	ProjectID   string       `json:"project_id"`
	ProjectName string       `json:"project_name"`
	Command     string       `json:"command"`
	WorkDir     string       `json:"work_dir"`
	Elevated    bool         `json:"elevated"`
	Minimized   bool         `json:"minimized"`
	LaunchedBy  string       `json:"launched_by"`
	Status      LaunchStatus `json:"status"`
	Error       string       `json:"error,omitempty"`
	LaunchedAt  time.Time    `json:"launched_at"`
}

// Failed reports whether the launch attempt did not start a process.
func (l Launch) Failed() bool {
	return l.Status == LaunchFailed
}
