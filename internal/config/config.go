// Package config provides YAML-based board configuration loading and
// variant presets for the gem swap board.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-gemswap/internal/board"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GemSwapConfig contains all configuration for the gem swap board.
type GemSwapConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Palette   []string       `yaml:"palette"`
	Adjacency string         `yaml:"adjacency"`
	Terminal  TerminalConfig `yaml:"terminal"`
	Window    WindowConfig   `yaml:"window"`
}

// BoardConfig defines the grid geometry in board pixels.
type BoardConfig struct {
	Size      int     `yaml:"size"`
	CellSize  float64 `yaml:"cell_size"`
	TokenSize float64 `yaml:"token_size"`
	Border    float64 `yaml:"border"`
}

// TerminalConfig defines how many terminal cells one grid cell spans.
type TerminalConfig struct {
	CellCols int `yaml:"cell_cols"`
	CellRows int `yaml:"cell_rows"`
}

// WindowConfig defines the desktop window size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Grid returns the board topology described by the config.
func (c GemSwapConfig) Grid() board.Grid {
	return board.Grid{
		Size:      c.Board.Size,
		CellSize:  c.Board.CellSize,
		TokenSize: c.Board.TokenSize,
		Border:    c.Board.Border,
	}
}

// AdjacencyMode returns the parsed down-neighbor rule.
func (c GemSwapConfig) AdjacencyMode() (board.AdjacencyMode, error) {
	return board.ParseAdjacencyMode(c.Adjacency)
}

// Colors parses the palette.
func (c GemSwapConfig) Colors() ([]colorful.Color, error) {
	colors := make([]colorful.Color, len(c.Palette))
	for i, hex := range c.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette[%d] %q: %w", i, hex, err)
		}
		colors[i] = col
	}
	return colors, nil
}

// Validate checks every section of the config.
func (c GemSwapConfig) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	if _, err := c.Colors(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.AdjacencyMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Terminal.CellCols < 2 || c.Terminal.CellRows < 2 {
		return fmt.Errorf("%w: terminal cell must be at least 2x2, got %dx%d",
			ErrInvalidConfig, c.Terminal.CellCols, c.Terminal.CellRows)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive",
			ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Variant names a playable preset.
type Variant string

const (
	VariantClassic Variant = "gemswap"
	VariantMini    Variant = "gemswap_mini"
	VariantLegacy  Variant = "gemswap_legacy"
)

// Variants lists every preset.
var Variants = []Variant{VariantClassic, VariantMini, VariantLegacy}

// ApplyVariant modifies the config for a preset.
func ApplyVariant(cfg *GemSwapConfig, v Variant) {
	switch v {
	case VariantMini:
		cfg.Board.Size = 6
	case VariantLegacy:
		cfg.Adjacency = string(board.AdjacencyLegacy)
	}
}
