package tween

import "testing"

func TestLerpEndpoints(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-5, 10, 0.5}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
}

func TestLerpMidpoint(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -4, 2}
	want := Vec3{5, -2, 1}

	if got := Lerp(a, b, 0.5); got != want {
		t.Errorf("Lerp midpoint = %v, want %v", got, want)
	}
}

func TestAddScale(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got, want := Add(a, b), (Vec3{5, 7, 9}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := Scale(a, 2), (Vec3{2, 4, 6}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}
