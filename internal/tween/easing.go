package tween

import (
	"fmt"

	"github.com/fogleman/ease"
)

// EasingKind selects the progress curve applied to a task's interpolation.
type EasingKind int

const (
	EaseLinear EasingKind = iota
	EaseIn
	EaseOut
	EaseInOut
)

func (k EasingKind) String() string {
	switch k {
	case EaseLinear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return "unknown"
	}
}

// ParseEasing maps a curve name (as it appears in config files) to its
// EasingKind.
func ParseEasing(name string) (EasingKind, error) {
	switch name {
	case "linear":
		return EaseLinear, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	default:
		return EaseLinear, fmt.Errorf("unknown easing %q", name)
	}
}

// Ease reshapes linear progress t through the curve for this kind.
// Callers normally clamp t to [0,1] before calling; out-of-range input is
// clamped here again rather than rejected.
func (k EasingKind) Ease(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	switch k {
	case EaseIn:
		return ease.InQuad(t)
	case EaseOut:
		return ease.OutQuad(t)
	case EaseInOut:
		return ease.InOutQuad(t)
	default:
		return ease.Linear(t)
	}
}
