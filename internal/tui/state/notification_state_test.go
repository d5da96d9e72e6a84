package state

import (
	"fmt"
	"testing"
)

func TestNotificationState_AddAndClear(t *testing.T) {
	s := NewNotificationState()
	if s.HasAny() {
		t.Fatal("new state has notifications")
	}

	s.Add(LevelInfo, "launched api")
	s.Add(LevelError, "command is empty")

	if len(s.All()) != 2 {
		t.Fatalf("All() len = %d, want 2", len(s.All()))
	}
	latest, ok := s.Latest()
	if !ok || latest.Level != LevelError {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() after Clear = true")
	}
	if _, ok := s.Latest(); ok {
		t.Error("Latest() ok after Clear")
	}
}

func TestNotificationState_DropsOldest(t *testing.T) {
	s := NewNotificationState()
	for i := range maxNotifications + 2 {
		s.Add(LevelInfo, fmt.Sprintf("n%d", i))
	}

	all := s.All()
	if len(all) != maxNotifications {
		t.Fatalf("All() len = %d, want %d", len(all), maxNotifications)
	}
	if all[0].Message != "n2" {
		t.Errorf("oldest kept = %q, want n2", all[0].Message)
	}
}

func TestNotificationState_GetLayers(t *testing.T) {
	render := func(n Notification) string { return "[" + n.Message + "]\nline" }

	s := NewNotificationState()
	s.Add(LevelInfo, "one")
	s.Add(LevelInfo, "two")

	if got := s.GetLayers(render); len(got) != 0 {
		t.Errorf("GetLayers() without window size = %d layers, want 0", len(got))
	}

	s.SetWindowSize(40, 20)
	layers := s.GetLayers(render)
	if len(layers) != 2 {
		t.Fatalf("GetLayers() = %d layers, want 2", len(layers))
	}
	if layers[0].GetY() != 0 || layers[1].GetY() != 3 {
		t.Errorf("rows = %d, %d; want 0, 3", layers[0].GetY(), layers[1].GetY())
	}
	if layers[0].GetX() != 40-len("[one]")-1 {
		t.Errorf("col = %d, want right aligned", layers[0].GetX())
	}

	s.SetWindowSize(40, 4)
	if got := s.GetLayers(render); len(got) != 1 {
		t.Errorf("GetLayers() on short window = %d layers, want 1", len(got))
	}
}
