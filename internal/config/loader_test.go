package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/rgb-guess/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseColors(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parseColors(embedded) failed: %v", err)
	}
	if diff := cmp.Diff(DefaultColorsConfig(), cfg); diff != "" {
		t.Errorf("embedded defaults differ from DefaultColorsConfig() (-want +got):\n%s", diff)
	}
}

func TestLoadColorsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yaml")
	data := []byte(`
board:
  default_difficulty: easy
  header_color: "#102030"
message:
  fade_delay_ms: 50
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadColors(path)
	if err != nil {
		t.Fatalf("LoadColors() failed: %v", err)
	}

	if cfg.Board.DefaultDifficulty != DifficultyEasy {
		t.Errorf("DefaultDifficulty = %q, expected easy", cfg.Board.DefaultDifficulty)
	}
	if cfg.Board.HeaderColor != core.RGB(16, 32, 48) {
		t.Errorf("HeaderColor = %v, expected rgb(16, 32, 48)", cfg.Board.HeaderColor)
	}
	if cfg.Message.FadeDelay() != 50*time.Millisecond {
		t.Errorf("FadeDelay() = %v, expected 50ms", cfg.Message.FadeDelay())
	}

	// Keys not present in the file keep their defaults
	if cfg.Board.Tiles != HardTiles {
		t.Errorf("Tiles = %d, expected default %d", cfg.Board.Tiles, HardTiles)
	}
	if cfg.Message.TryAgain != "Try Again" {
		t.Errorf("TryAgain = %q, expected default", cfg.Message.TryAgain)
	}
}

func TestLoadColorsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadColors(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadColors() with missing file should fail")
	}

	tests := []struct {
		name string
		yaml string
	}{
		{"too few tiles", "board:\n  tiles: 3\n"},
		{"bad difficulty", "board:\n  default_difficulty: medium\n"},
		{"bad color", "board:\n  header_color: purple\n"},
		{"negative delay", "message:\n  fade_delay_ms: -1\n"},
		{"not yaml", "board: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if _, err := LoadColors(path); err == nil {
				t.Errorf("LoadColors(%q) should fail", tt.yaml)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		input   string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficultyPreset(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := DefaultColorsConfig()

	if err := ApplyDifficultyPreset(&cfg, ""); err != nil {
		t.Fatalf("empty preset should be accepted: %v", err)
	}
	if cfg.Board.DefaultDifficulty != DifficultyHard {
		t.Errorf("empty preset changed difficulty to %q", cfg.Board.DefaultDifficulty)
	}

	if err := ApplyDifficultyPreset(&cfg, "easy"); err != nil {
		t.Fatalf("ApplyDifficultyPreset() failed: %v", err)
	}
	if cfg.Board.DefaultDifficulty != DifficultyEasy {
		t.Errorf("DefaultDifficulty = %q, expected easy", cfg.Board.DefaultDifficulty)
	}

	if err := ApplyDifficultyPreset(&cfg, "fixed"); err == nil {
		t.Error("ApplyDifficultyPreset() with unknown preset should fail")
	}
}
