package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-gemswap/internal/board"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultGemSwapConfig()

	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if len(cfg.Palette) != len(def.Palette) {
		t.Fatalf("len(Palette) = %d, expected %d", len(cfg.Palette), len(def.Palette))
	}
	for i := range def.Palette {
		if cfg.Palette[i] != def.Palette[i] {
			t.Errorf("Palette[%d] = %s, expected %s", i, cfg.Palette[i], def.Palette[i])
		}
	}
	if cfg.Adjacency != def.Adjacency {
		t.Errorf("Adjacency = %q, expected %q", cfg.Adjacency, def.Adjacency)
	}
	if cfg.Terminal != def.Terminal {
		t.Errorf("Terminal = %+v, expected %+v", cfg.Terminal, def.Terminal)
	}
	if cfg.Window != def.Window {
		t.Errorf("Window = %+v, expected %+v", cfg.Window, def.Window)
	}
}

func TestDefaultGrid(t *testing.T) {
	g := DefaultGemSwapConfig().Grid()
	if g != board.DefaultGrid() {
		t.Errorf("Grid() = %+v, expected %+v", g, board.DefaultGrid())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 5\nadjacency: legacy\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, expected 5", cfg.Board.Size)
	}
	if cfg.Board.CellSize != 54 {
		t.Errorf("Board.CellSize = %v, expected 54", cfg.Board.CellSize)
	}
	if len(cfg.Palette) != 8 {
		t.Errorf("len(Palette) = %d, expected 8", len(cfg.Palette))
	}
	mode, err := cfg.AdjacencyMode()
	if err != nil || mode != board.AdjacencyLegacy {
		t.Errorf("AdjacencyMode() = %v, %v, expected legacy", mode, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GemSwapConfig)
	}{
		{"zero size", func(c *GemSwapConfig) { c.Board.Size = 0 }},
		{"token larger than cell", func(c *GemSwapConfig) { c.Board.TokenSize = 60 }},
		{"empty palette", func(c *GemSwapConfig) { c.Palette = nil }},
		{"bad hex", func(c *GemSwapConfig) { c.Palette[2] = "blue" }},
		{"unknown adjacency", func(c *GemSwapConfig) { c.Adjacency = "diagonal" }},
		{"tiny terminal cell", func(c *GemSwapConfig) { c.Terminal.CellRows = 1 }},
		{"zero window", func(c *GemSwapConfig) { c.Window.Width = 0 }},
	}

	if err := DefaultGemSwapConfig().Validate(); err != nil {
		t.Fatalf("default Validate() = %v, expected nil", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGemSwapConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestColors(t *testing.T) {
	colors, err := DefaultGemSwapConfig().Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if len(colors) != 8 {
		t.Fatalf("len(Colors()) = %d, expected 8", len(colors))
	}
	if colors[0].Hex() != "#e62323" {
		t.Errorf("Colors()[0] = %s, expected #e62323", colors[0].Hex())
	}
}

func TestApplyVariant(t *testing.T) {
	tests := []struct {
		variant   Variant
		size      int
		adjacency string
	}{
		{VariantClassic, 8, "strict"},
		{VariantMini, 6, "strict"},
		{VariantLegacy, 8, "legacy"},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			cfg := DefaultGemSwapConfig()
			ApplyVariant(&cfg, tt.variant)
			if cfg.Board.Size != tt.size {
				t.Errorf("Board.Size = %d, expected %d", cfg.Board.Size, tt.size)
			}
			if cfg.Adjacency != tt.adjacency {
				t.Errorf("Adjacency = %q, expected %q", cfg.Adjacency, tt.adjacency)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadVariant(path, VariantClassic)
	if err != nil {
		t.Fatalf("LoadVariant() failed: %v", err)
	}
	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, expected 4", cfg.Board.Size)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(bad) = %v, expected ErrInvalidConfig", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGemSwapConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Board != DefaultGemSwapConfig().Board {
		t.Errorf("Board = %+v after round trip", cfg.Board)
	}
}
