package core

import (
	"strings"
)

// Cell is one character of the screen buffer with its style.
type Cell struct {
	Rune  rune
	Color Color
	Faint bool
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering the board.
// It decouples rendering from the terminal, allowing the game to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a default-colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a styled cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: color})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, color Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColor(x, y, text, color)
}

// FillRect fills a rectangular area with the given cell.
func (s *Screen) FillRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
// Boxes drawn edge to edge share their outlines and get junction runes.
func (s *Screen) DrawBox(r Rect, color Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.merge(x, r.Y, edgeH, color)
		s.merge(x, bottom, edgeH, color)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.merge(r.X, y, edgeV, color)
		s.merge(right, y, edgeV, color)
	}

	s.merge(r.X, r.Y, edgeRight|edgeDown, color)
	s.merge(right, r.Y, edgeLeft|edgeDown, color)
	s.merge(r.X, bottom, edgeRight|edgeUp, color)
	s.merge(right, bottom, edgeLeft|edgeUp, color)
}

// Line-drawing connection bits.
const (
	edgeUp = 1 << iota
	edgeDown
	edgeLeft
	edgeRight

	edgeH = edgeLeft | edgeRight
	edgeV = edgeUp | edgeDown
)

var boxRunes = map[int]rune{
	edgeH:                '─',
	edgeV:                '│',
	edgeRight | edgeDown: '┌',
	edgeLeft | edgeDown:  '┐',
	edgeRight | edgeUp:   '└',
	edgeLeft | edgeUp:    '┘',
	edgeV | edgeRight:    '├',
	edgeV | edgeLeft:     '┤',
	edgeH | edgeDown:     '┬',
	edgeH | edgeUp:       '┴',
	edgeH | edgeV:        '┼',
}

var runeEdges = func() map[rune]int {
	m := make(map[rune]int, len(boxRunes))
	for bits, r := range boxRunes {
		m[r] = bits
	}
	return m
}()

// merge ORs line connections into whatever line rune is already at (x, y).
func (s *Screen) merge(x, y, bits int, color Color) {
	existing := runeEdges[s.Get(x, y)]
	s.SetCell(x, y, Cell{Rune: boxRunes[existing|bits], Color: color})
}

// String converts the screen buffer to a plain string without styles.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
