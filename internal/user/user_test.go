package user

import (
	"testing"
)

func TestGetCurrentUsername(t *testing.T) {
	username := GetCurrentUsername()
	if username == "" {
		t.Error("GetCurrentUsername() returned empty string")
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"USER wins", map[string]string{"USER": "alice", "USERNAME": "bob"}, "alice"},
		{"USERNAME fallback", map[string]string{"USERNAME": "bob"}, "bob"},
		{"domain stripped", map[string]string{"USERNAME": `CORP\carol`}, "carol"},
		{"nothing set", map[string]string{}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromEnv(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("fromEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dave", "dave"},
		{`WORKGROUP\dave`, "dave"},
		{`trailing\`, `trailing\`},
	}

	for _, tt := range tests {
		if got := stripDomain(tt.in); got != tt.want {
			t.Errorf("stripDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
