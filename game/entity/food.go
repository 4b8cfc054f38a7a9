package entity

import "snake-infinity/game/types"

// Food is the single pellet on the board.
type Food struct {
	Position types.Point
	Score    int
	Visible  bool
}

func NewFood(pos types.Point, score int) *Food {
	return &Food{Position: pos, Score: score, Visible: true}
}
