package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 50, Y: 470, Width: 30, Height: 30}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 60, Y: 480, Width: 25, Height: 25}, true},
		{"contained", Rect{X: 55, Y: 475, Width: 5, Height: 5}, true},
		{"touch_right_edge", Rect{X: 80, Y: 470, Width: 10, Height: 10}, false},
		{"touch_left_edge", Rect{X: 40, Y: 470, Width: 10, Height: 10}, false},
		{"touch_top_edge", Rect{X: 50, Y: 460, Width: 10, Height: 10}, false},
		{"touch_bottom_edge", Rect{X: 50, Y: 500, Width: 10, Height: 10}, false},
		{"far_away", Rect{X: 700, Y: 100, Width: 10, Height: 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(100, 200, 0.1); got != 110 {
		t.Fatalf("Lerp(100, 200, 0.1) = %v, want 110", got)
	}
	if got := Lerp(3, 9, 0); got != 3 {
		t.Fatalf("Lerp at t=0 should return a, got %v", got)
	}
}
