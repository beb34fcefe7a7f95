package tween

import (
	"math"
	"testing"
)

func TestEasingBoundaryValues(t *testing.T) {
	kinds := []EasingKind{EaseLinear, EaseIn, EaseOut, EaseInOut}

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			if got := k.Ease(0); got != 0 {
				t.Errorf("%v.Ease(0) = %v, want 0", k, got)
			}
			if got := k.Ease(1); got != 1 {
				t.Errorf("%v.Ease(1) = %v, want 1", k, got)
			}
		})
	}
}

func TestEasingStaysInUnitInterval(t *testing.T) {
	kinds := []EasingKind{EaseLinear, EaseIn, EaseOut, EaseInOut}

	for _, k := range kinds {
		for i := 0; i <= 100; i++ {
			v := k.Ease(float64(i) / 100)
			if v < 0 || v > 1 {
				t.Fatalf("%v.Ease(%v) = %v, outside [0,1]", k, float64(i)/100, v)
			}
		}
	}
}

func TestEaseInOutContinuousAtMidpoint(t *testing.T) {
	if got := EaseInOut.Ease(0.5); got != 0.5 {
		t.Errorf("EaseInOut.Ease(0.5) = %v, want 0.5", got)
	}

	// both piecewise branches approach 0.5 at the midpoint
	below := EaseInOut.Ease(0.5 - 1e-6)
	above := EaseInOut.Ease(0.5 + 1e-6)
	if math.Abs(below-0.5) > 1e-5 || math.Abs(above-0.5) > 1e-5 {
		t.Errorf("EaseInOut discontinuous at 0.5: below=%v above=%v", below, above)
	}
}

func TestEaseClampsOutOfRangeInput(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"negative", -1.0, 0},
		{"above one", 2.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []EasingKind{EaseLinear, EaseIn, EaseOut, EaseInOut} {
				if got := k.Ease(tt.t); got != tt.want {
					t.Errorf("%v.Ease(%v) = %v, want %v", k, tt.t, got, tt.want)
				}
			}
		})
	}
}

func TestEasingKindString(t *testing.T) {
	tests := []struct {
		kind     EasingKind
		expected string
	}{
		{EaseLinear, "linear"},
		{EaseIn, "ease-in"},
		{EaseOut, "ease-out"},
		{EaseInOut, "ease-in-out"},
		{EasingKind(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("EasingKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestParseEasing(t *testing.T) {
	for _, k := range []EasingKind{EaseLinear, EaseIn, EaseOut, EaseInOut} {
		got, err := ParseEasing(k.String())
		if err != nil {
			t.Fatalf("ParseEasing(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseEasing(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if _, err := ParseEasing("bounce"); err == nil {
		t.Error("ParseEasing(\"bounce\") should fail")
	}
}
