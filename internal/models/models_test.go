package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Defined(t *testing.T) {
	if ErrProjectNotFound == nil {
		t.Error("ErrProjectNotFound should not be nil")
	}
	if ErrAmbiguousID == nil {
		t.Error("ErrAmbiguousID should not be nil")
	}
	if errors.Is(ErrProjectNotFound, ErrAmbiguousID) {
		t.Error("ErrProjectNotFound and ErrAmbiguousID should be distinct")
	}
}

// ============================================================================
// Project Tests
// ============================================================================

func TestProject_FieldsRoundTrip(t *testing.T) {
	p := Project{
		ID:             "5b0c3a9e-1111-2222-3333-444455556666",
		Name:           "api",
		Path:           "/home/me/api",
		Command:        "npm start",
		IconPath:       "/home/me/api/favicon.ico",
		RunAsAdmin:     true,
		StartMinimized: true,
	}

	var q Project
	q.ID = "other"
	q.Apply(p.Fields())

	if q.ID != "other" {
		t.Errorf("Apply() changed ID to %q", q.ID)
	}
	if q.Name != p.Name || q.Path != p.Path || q.Command != p.Command || q.IconPath != p.IconPath {
		t.Errorf("Apply() = %+v, want fields of %+v", q, p)
	}
	if !q.RunAsAdmin || !q.StartMinimized {
		t.Errorf("Apply() lost launch flags: %+v", q)
	}
}

func TestProject_ShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"12345678", "12345678"},
		{"5b0c3a9e-1111-2222-3333-444455556666", "5b0c3a9e"},
	}

	for _, tt := range tests {
		p := Project{ID: tt.id}
		if got := p.ShortID(); got != tt.want {
			t.Errorf("ShortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

// ============================================================================
// Launch Tests
// ============================================================================

func TestLaunch_Failed(t *testing.T) {
	ok := Launch{Status: LaunchStarted, LaunchedAt: time.Now()}
	if ok.Failed() {
		t.Error("started launch reported as failed")
	}

	bad := Launch{Status: LaunchFailed, Error: "exec: not found"}
	if !bad.Failed() {
		t.Error("failed launch not reported as failed")
	}
}
