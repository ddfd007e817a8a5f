package component

import "github.com/lixenwraith/ball-arena/core"

// PaddleComponent binds a paddle to the goal it defends
// Paddles slide along X for Top/Bottom and along Z for Left/Right
type PaddleComponent struct {
	Side  core.GoalSide
	Speed float64

	// Limit bounds the paddle centre to [-Limit, Limit] along its axis
	Limit float64

	// Desired is the signed speed along the goal line requested by input
	Desired float64
}

// AlongX reports whether the paddle slides on the X axis
func (p PaddleComponent) AlongX() bool {
	return p.Side == core.SideTop || p.Side == core.SideBottom
}
