package path

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/cityfolio/grid"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name      string
		start     grid.Cell
		end       grid.Cell
		waypoints []grid.Cell
	}{
		{"straight_line", grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 0}, nil},
		{"diagonal", grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}, nil},
		{"single_waypoint", grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}, []grid.Cell{{X: 4, Y: 0}}},
		{"scene_route", grid.Cell{X: 0, Y: 14}, grid.Cell{X: 14, Y: 0}, []grid.Cell{
			{X: 5, Y: 12}, {X: 3, Y: 7}, {X: 9, Y: 8}, {X: 8, Y: 3}, {X: 13, Y: 4},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			route, err := Generate(c.start, c.end, c.waypoints, rng)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			if route[0] != c.start {
				t.Fatalf("route starts at %+v, want %+v", route[0], c.start)
			}
			if route[len(route)-1] != c.end {
				t.Fatalf("route ends at %+v, want %+v", route[len(route)-1], c.end)
			}

			for i := 1; i < len(route); i++ {
				dx := route[i].X - route[i-1].X
				dy := route[i].Y - route[i-1].Y
				if abs(dx)+abs(dy) != 1 {
					t.Fatalf("step %d: %+v -> %+v is not a unit step", i, route[i-1], route[i])
				}
			}

			for _, wp := range c.waypoints {
				if !route.Contains(wp) {
					t.Fatalf("route misses waypoint %+v", wp)
				}
			}
		})
	}
}

func TestGenerateMinimumLength(t *testing.T) {
	// The walk is always the Manhattan distance through every target, since
	// each step strictly reduces one remaining delta.
	rng := rand.New(rand.NewPCG(3, 4))
	start := grid.Cell{X: 0, Y: 14}
	end := grid.Cell{X: 14, Y: 0}
	route, err := Generate(start, end, nil, rng)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := abs(end.X-start.X) + abs(end.Y-start.Y) + 1
	if len(route) != want {
		t.Fatalf("route length = %d, want %d", len(route), want)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	start := grid.Cell{X: 0, Y: 0}
	end := grid.Cell{X: 5, Y: 5}

	a, err := Generate(start, end, nil, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(start, end, nil, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("routes differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("routes diverge at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Run("nil_rng", func(t *testing.T) {
		if _, err := Generate(grid.Cell{}, grid.Cell{X: 1}, nil, nil); err == nil {
			t.Fatalf("expected error for nil rng")
		}
	})
	t.Run("start_equals_end", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 1))
		if _, err := Generate(grid.Cell{X: 2, Y: 2}, grid.Cell{X: 2, Y: 2}, nil, rng); err == nil {
			t.Fatalf("expected error for degenerate route")
		}
	})
}

func TestContains(t *testing.T) {
	route := Route{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if !route.Contains(grid.Cell{X: 1, Y: 0}) {
		t.Fatalf("Contains missed a route cell")
	}
	if route.Contains(grid.Cell{X: 2, Y: 2}) {
		t.Fatalf("Contains reported a cell off the route")
	}
}
