package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/cityfolio/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			for _, e := range ents {
				if !IsAlive(w, e) {
					t.Fatalf("entity %v should be alive", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestEntityIDReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	second := CreateEntity(w)

	if first == second {
		t.Fatalf("recycled id should carry a new generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle should be dead")
	}
	if !IsAlive(w, second) {
		t.Fatalf("fresh handle should be alive")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h, intPtr(41)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := Get(w, e, h)
	if !ok || *got != 41 {
		t.Fatalf("Get = %v, %v; want 41, true", got, ok)
	}

	*got = 42
	again, _ := Get(w, e, h)
	if *again != 42 {
		t.Fatalf("Get should return a pointer into storage")
	}

	if !Has(w, e, h) {
		t.Fatalf("Has = false after Add")
	}
	if !Remove(w, e, h) {
		t.Fatalf("Remove should report true")
	}
	if Has(w, e, h) {
		t.Fatalf("Has = true after Remove")
	}
	if _, ok := Get(w, e, h); ok {
		t.Fatalf("Get ok after Remove")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()

	e := CreateEntity(w)
	DestroyEntity(w, e)
	if err := Add(w, e, h, stringPtr("x")); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("Add to dead entity err = %v, want %v", err, component.ErrEntityNotAlive)
	}

	live := CreateEntity(w)
	if err := Add(w, live, h, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("Add nil component err = %v, want %v", err, component.ErrNilComponent)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h, intPtr(7)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	DestroyEntity(w, e)

	if _, _, ok := First(w, h); ok {
		t.Fatalf("component should be gone after entity destruction")
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[float64]()

	if _, _, ok := First(w, h); ok {
		t.Fatalf("First on empty store should report false")
	}

	e := CreateEntity(w)
	if err := Add(w, e, h, float64Ptr(2.5)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, v, ok := First(w, h)
	if !ok || got != e || *v != 2.5 {
		t.Fatalf("First = %v, %v, %v; want %v, 2.5, true", got, v, ok, e)
	}
}

func TestForEach2IteratesIntersection(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	both := CreateEntity(w)
	onlyA := CreateEntity(w)
	onlyB := CreateEntity(w)

	if err := Add(w, both, ha, intPtr(1)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, both, hb, stringPtr("both")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, onlyA, ha, intPtr(2)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, onlyB, hb, stringPtr("b")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var visited []Entity
	ForEach2(w, ha, hb, func(e Entity, a *int, b *string) {
		visited = append(visited, e)
		if *a != 1 || *b != "both" {
			t.Fatalf("ForEach2 values = %d, %q", *a, *b)
		}
	})

	if len(visited) != 1 || visited[0] != both {
		t.Fatalf("ForEach2 visited %v, want only %v", visited, both)
	}
}

func TestSystemsRunInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(systemFunc(func(*World) { order = append(order, "a") }))
	w.AddSystem(systemFunc(func(*World) { order = append(order, "b") }))

	w.Update()

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("systems ran as %v, want [a b]", order)
	}
}

func TestEventQueueSurvivesUpdate(t *testing.T) {
	w := NewWorld()
	w.AddSystem(systemFunc(func(w *World) {
		w.Events().Push(Event{Type: "ping"})
	}))

	w.Update()

	// Update never flushes; the game decides when to drain.
	if w.Events().Len() != 1 {
		t.Fatalf("queue length = %d after update, want 1", w.Events().Len())
	}
	drained := w.Events().Drain()
	if len(drained) != 1 || drained[0].Type != "ping" {
		t.Fatalf("Drain = %v", drained)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}
}

type systemFunc func(*World)

func (f systemFunc) Update(w *World) { f(w) }

func intPtr(i int) *int             { return &i }
func stringPtr(s string) *string    { return &s }
func float64Ptr(f float64) *float64 { return &f }
