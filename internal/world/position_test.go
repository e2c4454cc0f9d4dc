package world

import (
	"math"
	"testing"
)

func TestDistanceIsEuclidean(t *testing.T) {
	cases := []struct {
		a, b Position
		want float64
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{1, 0}, 1},
		{Position{0, 0}, Position{0, -3}, 3},
		{Position{0, 0}, Position{1, 1}, math.Sqrt2},
		{Position{0, 0}, Position{3, 4}, 5},
		{Position{-2, -2}, Position{1, 2}, 5},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Distance(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := Distance(c.b, c.a); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Distance(%s, %s) = %v, want %v", c.b, c.a, got, c.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{X: 3, Y: -4}).String(); got != "(3, -4)" {
		t.Fatalf("String() = %q", got)
	}
}
