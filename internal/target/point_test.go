package target

import (
	"testing"

	"tweenq/internal/tween"
)

func TestPointReceivesScheduledPositions(t *testing.T) {
	p := &Point{}
	s := tween.New(tween.Config{})

	if _, err := s.Submit(p, tween.Vec3{}, tween.Vec3{X: 4, Y: 8}, 1, false, tween.EaseLinear); err != nil {
		t.Fatal(err)
	}

	s.Tick(0.5)
	if got, want := p.Position(), (tween.Vec3{X: 2, Y: 4}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}

	s.Tick(0.5)
	if got, want := p.Position(), (tween.Vec3{X: 4, Y: 8}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}
