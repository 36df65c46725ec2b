package ecs

import (
	"testing"

	"github.com/milk9111/reefolio/ecs/component"
)

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
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
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return false for a dead entity")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestComponentsAddGetRemove(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hFloat := component.NewComponent[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, hInt.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt.Kind()) },
		},
		{
			name: "replace_float_on_e2",
			setup: func() error {
				if err := Add(w, e2, hFloat.Kind(), float64Ptr(1.5)); err != nil {
					return err
				}
				return Add(w, e2, hFloat.Kind(), float64Ptr(2.5))
			},
			check: func(t *testing.T) {
				v, ok := Get(w, e2, hFloat.Kind())
				if !ok || *v != 2.5 {
					t.Fatalf("expected replaced value 2.5, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e2, hFloat.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestRemoveKeepsOtherEntitiesIntact(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	if !Remove(w, ents[1], h.Kind()) || !Remove(w, ents[4], h.Kind()) {
		t.Fatal("remove failed")
	}
	for _, i := range []int{0, 2, 3} {
		v, ok := Get(w, ents[i], h.Kind())
		if !ok || *v != i {
			t.Fatalf("entity %d: expected %d, got %v ok=%v", i, i, v, ok)
		}
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachMutatesInPlace(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}

	ForEach(w, h.Kind(), func(_ Entity, v *int) { *v += 41 })

	v, _ := Get(w, e, h.Kind())
	if *v != 42 {
		t.Fatalf("expected 42, got %d", *v)
	}
}

func TestForEachN(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection_of_three",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []func() error{
					func() error { return Add(w, e1, ka, intPtr(1)) },
					func() error { return Add(w, e2, ka, intPtr(2)) },
					func() error { return Add(w, e2, kb, intPtr(3)) },
					func() error { return Add(w, e2, kc, intPtr(5)) },
					func() error { return Add(w, e3, kb, intPtr(4)) },
				} {
					if err := add(); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[float64]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, float64Ptr(2)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *float64) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "four_kinds",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				kd := component.NewComponentKind[int]()

				for _, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
					if err := Add(w, e2, k, intPtr(7)); err != nil {
						t.Fatal(err)
					}
				}
				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				sum := 0
				ForEach4(w, ka, kb, kc, kd, func(_ Entity, a, b, c, d *int) { sum += *a + *b + *c + *d })
				if sum != 28 {
					t.Fatalf("expected sum 28 from e2 only, got %d", sum)
				}
			},
		},
		{
			name: "missing_store_returns_nothing",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirstAndQuery(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponent[struct{}]()
	val := component.NewComponent[int]()

	if _, ok := w.First(tag.Kind()); ok {
		t.Fatal("First on empty store should report false")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e2, tag.Kind(), &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e1, val.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, val.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}

	first, ok := w.First(tag.Kind())
	if !ok || first != e2 {
		t.Fatalf("expected e2, got %v ok=%v", first, ok)
	}

	got := w.Query(tag.Kind(), val.Kind())
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected [e2], got %v", got)
	}
	if len(w.Query(val.Kind())) != 2 {
		t.Fatalf("expected both entities with val")
	}
}

type recordingSystem struct {
	seen []string
}

func (r *recordingSystem) Update(w *World) {
	for _, typ := range []string{EventNavigate, EventContact} {
		for _, evt := range w.Events().Peek(typ) {
			r.seen = append(r.seen, evt.Type)
		}
	}
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	rec := &recordingSystem{}
	s := NewScheduler(rec)

	w.Events().Push(Event{Type: EventNavigate, Data: NavigateEvent{Anchor: "home"}})
	w.Events().Push(Event{Type: EventContact})
	if n := len(w.Events().Peek(EventNavigate)); n != 1 {
		t.Fatalf("expected 1 pending navigate event, got %d", n)
	}
	s.Update(w)

	if len(rec.seen) != 2 || rec.seen[0] != EventNavigate || rec.seen[1] != EventContact {
		t.Fatalf("unexpected events %v", rec.seen)
	}

	w.Events().Push(Event{Type: EventContact})
	rec.seen = nil
	s.Update(w)
	if len(rec.seen) != 1 {
		t.Fatalf("expected the contact event once, got %v", rec.seen)
	}
	if n := len(w.Events().Peek(EventContact)); n != 0 {
		t.Fatalf("events should be flushed after an update, %d left", n)
	}
}
