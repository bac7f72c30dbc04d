package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded settings.yaml failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  board_size: 5\n  four_tile_percent: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.BoardSize != 5 || cfg.Game.FourTilePercent != 10 {
		t.Errorf("Load() game = %+v, want 5x5 at 10%%", cfg.Game)
	}
	// Missing section keeps its default
	if cfg.Scores.MinRecorded != 500 {
		t.Errorf("MinRecorded = %d, want default 500", cfg.Scores.MinRecorded)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("game:\n  board_size: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(bad)
	if !errors.Is(err, ErrInvalidBoardSize) {
		t.Errorf("Load() error = %v, want ErrInvalidBoardSize", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Config{
		Game:   GameSettings{BoardSize: 6, FourTilePercent: 12.5},
		Scores: ScoresConfig{MinRecorded: 0},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	cfg := Default()
	cfg.Game.FourTilePercent = 150

	if err := Save(path, cfg); !errors.Is(err, ErrInvalidPercent) {
		t.Errorf("Save() error = %v, want ErrInvalidPercent", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestGameSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       GameSettings
		wantErr error
	}{
		{"classic", GameSettings{4, 25}, nil},
		{"smallest", GameSettings{2, 0}, nil},
		{"all fours", GameSettings{4, 100}, nil},
		{"too small", GameSettings{1, 25}, ErrInvalidBoardSize},
		{"too large", GameSettings{MaxBoardSize + 1, 25}, ErrInvalidBoardSize},
		{"negative percent", GameSettings{4, -1}, ErrInvalidPercent},
		{"percent over 100", GameSettings{4, 100.5}, ErrInvalidPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGameSettingsID(t *testing.T) {
	tests := []struct {
		s    GameSettings
		want string
	}{
		{GameSettings{4, 25}, "4x4-25"},
		{GameSettings{3, 0}, "3x3-0"},
		{GameSettings{6, 12.5}, "6x6-12.5"},
	}
	for _, tt := range tests {
		if got := tt.s.ID(); got != tt.want {
			t.Errorf("ID() = %q, want %q", got, tt.want)
		}
	}
}
