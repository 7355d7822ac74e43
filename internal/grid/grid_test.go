package grid

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		w, h, edge int
		want       Grid
	}{
		{"exact", 200, 100, 20, Grid{10, 5}},
		{"floors partial tiles", 219, 119, 20, Grid{10, 5}},
		{"zero viewport clamps", 0, 0, 20, Grid{1, 1}},
		{"smaller than a tile", 10, 5, 20, Grid{1, 1}},
		{"default edge", 800, 600, 0, Grid{40, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.w, tt.h, tt.edge); got != tt.want {
				t.Errorf("Compute(%d, %d, %d) = %v, want %v", tt.w, tt.h, tt.edge, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	g := Grid{Width: 10, Height: 7}
	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{0, 0}},
		{Point{10, 7}, Point{0, 0}},
		{Point{-1, -1}, Point{9, 6}},
		{Point{11, 15}, Point{1, 1}},
		{Point{-23, -8}, Point{7, 6}},
		{Point{5, 3}, Point{5, 3}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapAlwaysOnBoard(t *testing.T) {
	g := Grid{Width: 13, Height: 4}
	for x := -100; x <= 100; x++ {
		p := g.Wrap(Point{x, -x * 3})
		if !g.Contains(p) {
			t.Fatalf("Wrap(%d, %d) = %v is off the board", x, -x*3, p)
		}
	}
}

func TestSpawnFoodInBounds(t *testing.T) {
	g := Grid{Width: 10, Height: 3}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		if p := g.SpawnFood(r); !g.Contains(p) {
			t.Fatalf("food %v outside %v", p, g)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := (Grid{Width: 11, Height: 10}).Center(); got != (Point{5, 5}) {
		t.Errorf("Center() = %v", got)
	}
}
