package types

import "testing"

func TestGridBounds(t *testing.T) {
	g := Grid{CellSize: 40, Cells: 20}

	if g.Span() != 800 {
		t.Fatalf("Expected span 800, got %d", g.Span())
	}

	tests := []struct {
		p        Point
		contains bool
		lattice  bool
	}{
		{Point{0, 0}, true, true},
		{Point{760, 760}, true, true},
		{Point{799, 0}, true, false},
		{Point{800, 0}, false, false},
		{Point{0, -40}, false, false},
		{Point{20, 40}, true, false},
	}
	for _, tc := range tests {
		if got := g.Contains(tc.p); got != tc.contains {
			t.Errorf("Contains(%v): expected %v, got %v", tc.p, tc.contains, got)
		}
		if got := g.OnLattice(tc.p); got != tc.lattice {
			t.Errorf("OnLattice(%v): expected %v, got %v", tc.p, tc.lattice, got)
		}
	}
}

func TestCenteredRect(t *testing.T) {
	g := Grid{CellSize: 40, Cells: 20}
	r := g.CenteredRect(100, 50)
	want := Rect{X: 350, Y: 375, W: 100, H: 50}
	if r != want {
		t.Fatalf("Expected %v, got %v", want, r)
	}
	if !r.Contains(Point{400, 400}) {
		t.Error("Expected centre inside rect")
	}
	if r.Contains(Point{349, 400}) {
		t.Error("Expected point left of rect outside")
	}
}

func TestScreenString(t *testing.T) {
	if ScreenGameOver.String() != "game_over" {
		t.Errorf("unexpected name %q", ScreenGameOver.String())
	}
	if Screen(9).String() != "screen(9)" {
		t.Errorf("unexpected name %q", Screen(9).String())
	}
}
