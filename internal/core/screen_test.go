package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must not panic
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(4, 1, '@', ColorRed)
	cell := s.GetCell(4, 1)
	if cell.Rune != '@' {
		t.Errorf("cell rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("cell color = %v, expected ColorRed", cell.Color)
	}

	// Clear resets color
	s.Clear()
	if got := s.GetCell(4, 1).Color; got != ColorDefault {
		t.Errorf("color after Clear = %v, expected ColorDefault", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place runes, row = %q", s.Row(1))
	}

	// Text past the right edge is clipped
	s.DrawText(8, 0, "long")
	if s.Get(9, 0) != 'o' {
		t.Errorf("clipped text wrong, got %q", s.Get(9, 0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("content lost on grow, got %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("content lost on shrink, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Errorf("top corners wrong: %q %q", s.Get(1, 1), s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("bottom corners wrong: %q %q", s.Get(1, 4), s.Get(5, 4))
	}
	if !strings.Contains(s.Row(1), "─") {
		t.Error("top edge missing")
	}
}
