package grid

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestNewGrid(t *testing.T) {
	cases := []struct {
		name     string
		size     int
		wantSize int
	}{
		{"normal", 15, 15},
		{"tiny", 1, 1},
		{"zero_clamps", 0, 1},
		{"negative_clamps", -4, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(c.size)
			if g.Size() != c.wantSize {
				t.Fatalf("Size() = %d, want %d", g.Size(), c.wantSize)
			}
			for y := 0; y < g.Size(); y++ {
				for x := 0; x < g.Size(); x++ {
					tile, ok := g.At(x, y)
					if !ok {
						t.Fatalf("At(%d, %d) not ok", x, y)
					}
					if tile.X != x || tile.Y != y || tile.Building != BuildingNone {
						t.Fatalf("At(%d, %d) = %+v, want empty tile at that cell", x, y, tile)
					}
				}
			}
		})
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := New(3)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, ok := g.At(c.X, c.Y); ok {
			t.Fatalf("At(%d, %d) ok, want out of bounds", c.X, c.Y)
		}
		if g.InBounds(c.X, c.Y) {
			t.Fatalf("InBounds(%d, %d) = true, want false", c.X, c.Y)
		}
	}
}

func TestMarkRoutePavesAndPins(t *testing.T) {
	g := New(4)
	route := []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	g.MarkRoute(route)

	for _, c := range route {
		tile, _ := g.At(c.X, c.Y)
		if tile.Building != BuildingRoad {
			t.Fatalf("route cell (%d, %d) building = %v, want road", c.X, c.Y, tile.Building)
		}
		if !g.OnRoute(c.X, c.Y) {
			t.Fatalf("route cell (%d, %d) not marked on route", c.X, c.Y)
		}
	}
	if g.OnRoute(3, 3) {
		t.Fatalf("off-route cell reported on route")
	}
	if got := g.Count(BuildingRoad); got != len(route) {
		t.Fatalf("Count(road) = %d, want %d", got, len(route))
	}
}

func TestPlace(t *testing.T) {
	cases := []struct {
		name    string
		x, y    int
		wantErr error
	}{
		{"free_cell", 1, 1, nil},
		{"out_of_bounds", 9, 9, ErrOutOfBounds},
		{"route_cell", 0, 0, ErrOnRoute},
		{"occupied_cell", 2, 2, ErrTileOccupied},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(4)
			g.MarkRoute([]Cell{{0, 0}})
			if err := g.Place(2, 2, BuildingPark); err != nil {
				t.Fatalf("setup place failed: %v", err)
			}

			err := g.Place(c.x, c.y, BuildingResidential)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("Place(%d, %d) err = %v, want %v", c.x, c.y, err, c.wantErr)
			}
			if c.wantErr == nil {
				tile, _ := g.At(c.x, c.y)
				if tile.Building != BuildingResidential {
					t.Fatalf("building after Place = %v, want residential", tile.Building)
				}
			}
		})
	}
}

func TestBulldoze(t *testing.T) {
	g := New(4)
	g.MarkRoute([]Cell{{0, 0}})
	if err := g.Place(1, 1, BuildingCommercial); err != nil {
		t.Fatalf("setup place failed: %v", err)
	}

	if err := g.Bulldoze(1, 1); err != nil {
		t.Fatalf("Bulldoze(1, 1) = %v, want nil", err)
	}
	tile, _ := g.At(1, 1)
	if tile.Building != BuildingNone {
		t.Fatalf("building after bulldoze = %v, want none", tile.Building)
	}

	if err := g.Bulldoze(0, 0); !errors.Is(err, ErrOnRoute) {
		t.Fatalf("Bulldoze route cell err = %v, want %v", err, ErrOnRoute)
	}
	if err := g.Bulldoze(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Bulldoze out of bounds err = %v, want %v", err, ErrOutOfBounds)
	}
}

func TestPlaceAfterBulldozeSucceeds(t *testing.T) {
	g := New(3)
	if err := g.Place(1, 1, BuildingIndustrial); err != nil {
		t.Fatalf("first place: %v", err)
	}
	if err := g.Bulldoze(1, 1); err != nil {
		t.Fatalf("bulldoze: %v", err)
	}
	if err := g.Place(1, 1, BuildingPark); err != nil {
		t.Fatalf("place after bulldoze: %v", err)
	}
}

func TestScatterParks(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	t.Run("never_touches_route_or_occupied", func(t *testing.T) {
		g := New(6)
		route := []Cell{{0, 0}, {1, 0}, {2, 0}}
		g.MarkRoute(route)
		if err := g.Place(3, 3, BuildingCommercial); err != nil {
			t.Fatalf("setup place failed: %v", err)
		}

		g.ScatterParks(rng, 1.0) // chance 1: every eligible tile becomes a park

		for _, c := range route {
			tile, _ := g.At(c.X, c.Y)
			if tile.Building != BuildingRoad {
				t.Fatalf("route cell (%d, %d) changed to %v", c.X, c.Y, tile.Building)
			}
		}
		tile, _ := g.At(3, 3)
		if tile.Building != BuildingCommercial {
			t.Fatalf("occupied cell changed to %v", tile.Building)
		}
		wantParks := 6*6 - len(route) - 1
		if got := g.Count(BuildingPark); got != wantParks {
			t.Fatalf("Count(park) = %d, want %d", got, wantParks)
		}
	})

	t.Run("zero_chance_is_noop", func(t *testing.T) {
		g := New(6)
		g.ScatterParks(rng, 0)
		if got := g.Count(BuildingPark); got != 0 {
			t.Fatalf("Count(park) = %d, want 0", got)
		}
	})
}
