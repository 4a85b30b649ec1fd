package core

// Color is a foreground color for a screen cell.
// It holds either an ANSI color code ("1".."255") or a "#rrggbb" hex value;
// the empty string is the terminal default.
type Color string

// Predefined colors for board chrome.
const (
	ColorDefault Color = ""
	ColorGray    Color = "245"
	ColorDim     Color = "240"
	ColorTitle   Color = "229"
	ColorWhite   Color = "15"
)
