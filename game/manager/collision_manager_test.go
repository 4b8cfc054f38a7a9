package manager

import (
	"testing"

	"snake-infinity/game/entity"
	"snake-infinity/game/types"
)

var testGrid = types.Grid{CellSize: 40, Cells: 20}

func TestWrapEdge(t *testing.T) {
	cm := NewCollisionManager(testGrid)

	tests := []struct {
		name    string
		head    types.Point
		want    types.Point
		wrapped bool
	}{
		{"right edge", types.Point{X: 800, Y: 120}, types.Point{X: 0, Y: 120}, true},
		{"left edge", types.Point{X: -40, Y: 120}, types.Point{X: 760, Y: 120}, true},
		{"bottom edge", types.Point{X: 200, Y: 800}, types.Point{X: 200, Y: 0}, true},
		{"top edge", types.Point{X: 200, Y: -40}, types.Point{X: 200, Y: 760}, true},
		{"inside", types.Point{X: 200, Y: 200}, types.Point{X: 200, Y: 200}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &entity.Snake{Body: []types.Point{tc.head, {X: 400, Y: 400}}}
			if got := cm.WrapEdge(s); got != tc.wrapped {
				t.Errorf("Expected wrapped=%v, got %v", tc.wrapped, got)
			}
			if s.GetHead() != tc.want {
				t.Errorf("Expected head %v, got %v", tc.want, s.GetHead())
			}
			if !testGrid.OnLattice(s.GetHead()) {
				t.Errorf("head %v is off the grid lattice", s.GetHead())
			}
		})
	}
}

func TestIsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(testGrid)

	tests := []struct {
		name string
		body []types.Point
		want bool
	}{
		{"straight", []types.Point{{X: 0, Y: 0}, {X: 0, Y: 40}, {X: 0, Y: 80}}, false},
		{"bites middle", []types.Point{{X: 40, Y: 40}, {X: 80, Y: 40}, {X: 40, Y: 40}, {X: 0, Y: 40}}, true},
		{"bites tail", []types.Point{{X: 40, Y: 40}, {X: 80, Y: 40}, {X: 80, Y: 80}, {X: 40, Y: 80}, {X: 40, Y: 40}}, true},
		{"single segment", []types.Point{{X: 0, Y: 0}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &entity.Snake{Body: tc.body}
			if got := cm.IsSelfCollision(s); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(testGrid)
	food := entity.NewFood(types.Point{X: 80, Y: 80}, 10)

	if !cm.IsFoodCollision(types.Point{X: 80, Y: 80}, food) {
		t.Error("Expected collision on food cell")
	}
	if cm.IsFoodCollision(types.Point{X: 40, Y: 80}, food) {
		t.Error("Expected no collision off food cell")
	}

	food.Visible = false
	if cm.IsFoodCollision(types.Point{X: 80, Y: 80}, food) {
		t.Error("Expected hidden food to be ignored")
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(testGrid)
	s := &entity.Snake{Body: []types.Point{{X: 0, Y: 0}, {X: 0, Y: 40}}}

	if cm.ValidateSpawnPosition(types.Point{X: 0, Y: 40}, s) {
		t.Error("Expected occupied cell to be rejected")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 10, Y: 40}, s) {
		t.Error("Expected off-lattice point to be rejected")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 40, Y: 40}, s) {
		t.Error("Expected free cell to be accepted")
	}
}
