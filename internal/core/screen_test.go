package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, 'X', ColorOrange)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("GetCell rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorOrange {
		t.Errorf("GetCell color = %v, expected ColorOrange", cell.Color)
	}

	// Out of bounds writes are ignored, reads return blank cells
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, '#', ColorRed)

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v after Clear, expected blank", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(2, 1, "reef", ColorCoral)

	if got := s.Row(1); got != "  reef    " {
		t.Errorf("Row(1) = %q, expected %q", got, "  reef    ")
	}
	if s.GetCell(2, 1).Color != ColorCoral {
		t.Error("DrawTextColored did not apply color")
	}

	// Clipping at the right edge must not panic
	s.DrawText(8, 0, "overflow")
	if got := s.Get(9, 0); got != 'v' {
		t.Errorf("clipped text cell = %q, expected 'v'", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("centered row = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'K')

	s.Resize(8, 6)

	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("size after grow = %dx%d, expected 8x6", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'K' {
		t.Errorf("content not preserved on grow: got %q", got)
	}

	s.Resize(2, 2)
	if got := s.Get(1, 1); got != 'K' {
		t.Errorf("content not preserved on shrink: got %q", got)
	}
	if got := s.GetCell(5, 3); got.Rune != ' ' {
		t.Errorf("out-of-bounds after shrink = %q, expected blank", got.Rune)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}
