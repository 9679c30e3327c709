package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != " " {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != "X" {
		t.Errorf("Get(5, 5) = %q, expected \"X\"", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != " " || s.Get(100, 0) != " " {
		t.Error("out of bounds Get should return a space")
	}
}

func TestScreenWideGlyph(t *testing.T) {
	s := NewScreen(6, 1)

	if w := s.SetGlyph(1, 0, "🐑", ColorWhite); w != 2 {
		t.Fatalf("SetGlyph width = %d, expected 2", w)
	}
	if s.Get(1, 0) != "🐑" {
		t.Errorf("owner cell = %q", s.Get(1, 0))
	}
	if !s.GetCell(2, 0).IsContinuation() {
		t.Error("right half of a wide glyph should be a continuation cell")
	}
	if got := s.Row(0); got != " 🐑   " {
		t.Errorf("Row(0) = %q", got)
	}

	// Overwriting the continuation cell clears the owner.
	s.Set(2, 0, 'x')
	if s.Get(1, 0) != " " || s.Get(2, 0) != "x" {
		t.Errorf("overwrite of continuation: row = %q", s.Row(0))
	}

	// A wide glyph that does not fit at the right edge is dropped.
	s.SetGlyph(5, 0, "🌽", ColorYellow)
	if s.Get(5, 0) != " " {
		t.Errorf("clipped wide glyph should not be drawn, got %q", s.Get(5, 0))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X')
	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if s.Get(x, y) != " " {
				t.Fatalf("after Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText wrote %q", got)
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != "H" || s.Get(19, 0) != "e" {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextWithEmoji(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "a🥚b")

	if s.Get(0, 0) != "a" || s.Get(1, 0) != "🥚" || s.Get(3, 0) != "b" {
		t.Errorf("row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != "H" || s.Get(x+1, 2) != "i" {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBrown)

	corners := map[Point]string{
		{X: 1, Y: 1}: "┌",
		{X: 5, Y: 1}: "┐",
		{X: 1, Y: 4}: "└",
		{X: 5, Y: 4}: "┘",
	}
	for p, want := range corners {
		if got := s.Get(p.X, p.Y); got != want {
			t.Errorf("corner %v = %q, expected %q", p, got, want)
		}
		if s.GetCell(p.X, p.Y).Color != ColorBrown {
			t.Errorf("corner %v should carry the box color", p)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != "─" || s.Get(x, 4) != "─" {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != "│" || s.Get(5, y) != "│" {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenResizeSplitsWideGlyph(t *testing.T) {
	s := NewScreen(6, 1)
	s.SetGlyph(3, 0, "🐖", ColorMagenta)

	s.Resize(4, 1)
	if got := s.Row(0); got != "    " {
		t.Errorf("half glyph should be blanked, row = %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
