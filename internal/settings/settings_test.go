package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s != Default() {
		t.Fatalf("got %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathsprint", "settings.json")

	want := Settings{AdaptiveDifficulty: false, Sound: true, StatsDays: 30}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong type", `{"adaptiveDifficulty": "yes"}`},
		{"unknown key", `{"volume": 5}`},
		{"out of range", `{"statsDays": 0}`},
		{"not json", `adaptive = true`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid settings file loaded without error")
			}
		})
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"sound": false}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Sound {
		t.Error("sound = true, want false from file")
	}
	if !s.AdaptiveDifficulty || s.StatsDays != 7 {
		t.Errorf("missing keys not defaulted: %+v", s)
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("MATHSPRINT_CONFIG", "/tmp/custom.json")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/custom.json" {
		t.Fatalf("path = %q, want env override", p)
	}
}
