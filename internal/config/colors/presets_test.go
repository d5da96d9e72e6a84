package colors

import "testing"

func TestPresetsFillEveryColor(t *testing.T) {
	for _, name := range Presets {
		t.Run(name, func(t *testing.T) {
			scheme := GetPreset(name)
			if scheme.Preset != name {
				t.Errorf("Preset = %q, want %q", scheme.Preset, name)
			}
			for i, field := range scheme.fields() {
				if *field == "" {
					t.Errorf("color %d of %s is empty", i, name)
				}
			}
		})
	}
}

func TestGetPreset_UnknownFallsBackToDefault(t *testing.T) {
	if got := GetPreset("solarized").Preset; got != "default" {
		t.Errorf("GetPreset(unknown).Preset = %q, want default", got)
	}
}

func TestMergeFrom(t *testing.T) {
	base := *Wave()
	base.MergeFrom(ColorScheme{Preset: "lotus", Delete: "#000001"})

	if base.Preset != "lotus" {
		t.Errorf("Preset = %q, want lotus", base.Preset)
	}
	if base.Delete != "#000001" {
		t.Errorf("Delete = %q, want override", base.Delete)
	}
	if base.Accent != Wave().Accent {
		t.Errorf("Accent = %q, empty override replaced it", base.Accent)
	}
}
