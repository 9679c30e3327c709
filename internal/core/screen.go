package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Cell is one terminal cell. A double-width glyph (emoji) is stored in its
// left cell; the right cell is a continuation with an empty Glyph.
type Cell struct {
	Glyph string
	Color Color
}

// IsContinuation reports whether the cell is the right half of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Glyph == ""
}

var blankCell = Cell{Glyph: " "}

// GlyphWidth returns the number of terminal columns a grapheme cluster
// occupies, clamped to 1 or 2.
func GlyphWidth(glyph string) int {
	w := uniseg.StringWidth(glyph)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// TextWidth returns the display width of a string in terminal columns.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// glyphs while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in rows.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < min(oldH, height); y++ {
		for x := 0; x < min(oldW, width); x++ {
			s.cells[y][x] = old[y][x]
		}
		// A wide glyph cut in half by the new right edge becomes a space.
		if last := width - 1; last >= 0 && last < oldW && GlyphWidth(s.cells[y][last].Glyph) == 2 && !s.cells[y][last].IsContinuation() {
			s.cells[y][last] = blankCell
		}
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	c := Cell{Glyph: string(r)}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetGlyph(x, y, string(r), ColorDefault)
}

// SetColor places a colored rune at the given position.
func (s *Screen) SetColor(x, y int, r rune, color Color) {
	s.SetGlyph(x, y, string(r), color)
}

// SetGlyph places a grapheme cluster at (x, y) and returns its width.
// Wide glyphs that do not fit entirely on the row are dropped.
func (s *Screen) SetGlyph(x, y int, glyph string, color Color) int {
	w := GlyphWidth(glyph)
	if y < 0 || y >= s.height || x < 0 || x+w > s.width {
		return w
	}

	s.release(x, y)
	if w == 2 {
		s.release(x+1, y)
	}

	s.cells[y][x] = Cell{Glyph: glyph, Color: color}
	if w == 2 {
		s.cells[y][x+1] = Cell{Color: color}
	}
	return w
}

// release blanks (x, y) and any wide glyph overlapping it.
func (s *Screen) release(x, y int) {
	c := s.cells[y][x]
	switch {
	case c.IsContinuation():
		if x > 0 {
			s.cells[y][x-1] = blankCell
		}
	case GlyphWidth(c.Glyph) == 2 && x+1 < s.width:
		s.cells[y][x+1] = blankCell
	}
	s.cells[y][x] = blankCell
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// Get returns the glyph at the given position.
// Returns a space for out-of-bounds coordinates and "" for continuation cells.
func (s *Screen) Get(x, y int) string {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return " "
	}
	return s.cells[y][x].Glyph
}

// DrawText writes a string horizontally starting at (x, y).
// Glyphs that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, color Color) {
	g := uniseg.NewGraphemes(text)
	col := x
	for g.Next() {
		col += s.SetGlyph(col, y, g.Str(), color)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextColor((s.width-TextWidth(text))/2, y, text, ColorDefault)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, color Color) {
	if r.W < 2 || r.H < 2 {
		return
	}

	s.SetColor(r.X, r.Y, '┌', color)
	s.SetColor(r.Right()-1, r.Y, '┐', color)
	s.SetColor(r.X, r.Bottom()-1, '└', color)
	s.SetColor(r.Right()-1, r.Bottom()-1, '┘', color)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColor(x, r.Y, '─', color)
		s.SetColor(x, r.Bottom()-1, '─', color)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColor(r.X, y, '│', color)
		s.SetColor(r.Right()-1, y, '│', color)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x, y+i, r)
	}
}

// String converts the screen buffer to a plain string, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	s.writeRow(&sb, y)
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for _, c := range s.cells[y] {
		sb.WriteString(c.Glyph)
	}
}
