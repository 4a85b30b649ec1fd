package config

import (
	_ "embed"
)

//go:embed defaults/gemswap.yaml
var defaultGemSwapYAML []byte

// DefaultGemSwapConfig returns the default board configuration.
func DefaultGemSwapConfig() GemSwapConfig {
	return GemSwapConfig{
		Board: BoardConfig{
			Size:      8,
			CellSize:  54,
			TokenSize: 40,
			Border:    2,
		},
		Palette: []string{
			"#e62323", "#8b38d6", "#253cda", "#00a267",
			"#fffa54", "#43fff7", "#ff7cdc", "#ff8d00",
		},
		Adjacency: "strict",
		Terminal: TerminalConfig{
			CellCols: 5,
			CellRows: 2,
		},
		Window: WindowConfig{
			Width:  512,
			Height: 512,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGemSwapYAML
}
