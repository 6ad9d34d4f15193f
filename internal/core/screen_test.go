package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlankCells(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Every cell starts as a space in the default color
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell at (%d, %d) = %+v, expected blank default", x, y, c)
			}
		}
	}
}

func TestScreenSetCellGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '@', ColorCyan)
	c := s.GetCell(5, 5)
	if c.Rune != '@' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected '@'", c.Rune)
	}
	if c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorCyan", c.Color)
	}

	// Rune-only accessors see the same cell
	if s.Get(5, 5) != '@' {
		t.Errorf("Get(5, 5) = %q, expected '@'", s.Get(5, 5))
	}

	// Set without a color resets the cell to the default color
	s.Set(5, 5, 'X')
	c = s.GetCell(5, 5)
	if c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("after Set, cell = %+v, expected 'X' in default color", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	// Writes outside the buffer are silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	c := s.GetCell(100, 0)
	if c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank default", c)
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, '#', ColorBrightMagenta)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("after Clear, cell at (%d, %d) = %+v, expected blank default", x, y, c)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorRed)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '#' || c.Color != ColorDefault {
				t.Fatalf("after Fill, cell at (%d, %d) = %+v, expected '#' in default color", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Drift")

	for i, ch := range "Drift" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text clips at the right edge
	s.DrawText(18, 0, "Drift")
	if s.Get(18, 0) != 'D' || s.Get(19, 0) != 'r' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(3, 2, "LIVES", ColorBrightRed)

	for i, ch := range "LIVES" {
		c := s.GetCell(3+i, 2)
		if c.Rune != ch {
			t.Errorf("DrawTextColored: expected %q at (%d, 2), got %q", ch, 3+i, c.Rune)
		}
		if c.Color != ColorBrightRed {
			t.Errorf("DrawTextColored: expected ColorBrightRed at (%d, 2), got %v", 3+i, c.Color)
		}
	}

	// Neighbouring cells stay untouched
	if c := s.GetCell(2, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell before colored text = %+v, expected blank default", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// "Hi" is 2 chars, centered in 20 should start at 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect cells outside the rect")
	}
}

func TestScreenDrawRectColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColored(NewRect(1, 1, 4, 2), '█', ColorOrange)

	for y := 1; y < 3; y++ {
		for x := 1; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '█' || c.Color != ColorOrange {
				t.Errorf("DrawRectColored: cell at (%d, %d) = %+v, expected '█' in ColorOrange", x, y, c)
			}
		}
	}

	if c := s.GetCell(5, 1); c.Color != ColorDefault {
		t.Errorf("cell right of colored rect has color %v, expected default", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '─')

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '─' {
			t.Errorf("DrawHLine: expected '─' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
}

func TestScreenDrawVLineColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawVLineColored(3, 2, 4, '║', ColorBlue)

	for y := 2; y < 6; y++ {
		c := s.GetCell(3, y)
		if c.Rune != '║' || c.Color != ColorBlue {
			t.Errorf("DrawVLineColored: cell at (3, %d) = %+v, expected '║' in ColorBlue", y, c)
		}
	}
	if s.Get(3, 6) != ' ' {
		t.Error("DrawVLineColored should stop at the given length")
	}

	// Plain variant draws in the default color
	s.DrawVLine(4, 2, 4, '|')
	if c := s.GetCell(4, 3); c.Rune != '|' || c.Color != ColorDefault {
		t.Errorf("DrawVLine cell = %+v, expected '|' in default color", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColored(0, 1, "BBBBB", ColorGreen)
	s.DrawText(0, 2, "CCCCC")

	// String drops colors, keeping only the runes
	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorYellow)
	s.DrawText(0, 5, "World")

	// Shrinking keeps the top-left content, colors included
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if c := s.GetCell(0, 0); c.Color != ColorYellow {
		t.Errorf("color should survive resize, got %v", c.Color)
	}

	// Growing keeps old content and blanks the new cells
	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if c := s.GetCell(12, 6); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("new cell after enlarging = %+v, expected blank default", c)
	}

	// Same-size resize is a no-op
	s.Set(1, 1, 'Z')
	s.Resize(15, 8)
	if s.Get(1, 1) != 'Z' {
		t.Error("same-size resize should not clear content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len([]rune(row)) != 10 {
		t.Errorf("row length should be 10, got %d", len([]rune(row)))
	}

	if s.Row(-1) != strings.Repeat(" ", 10) {
		t.Error("out of bounds row should be spaces")
	}
}
