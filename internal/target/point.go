package target

import "tweenq/internal/tween"

// Point is a minimal positionable object for hosts that only need a
// place to receive interpolated positions (demos, sandboxes).
type Point struct {
	pos tween.Vec3
}

// SetPosition stores the interpolated position written by the scheduler.
func (p *Point) SetPosition(v tween.Vec3) { p.pos = v }

// Position returns the most recently written position.
func (p *Point) Position() tween.Vec3 { return p.pos }
