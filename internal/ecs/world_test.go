package ecs

import "testing"

type tag struct{ name string }

func TestSpawnDespawn(t *testing.T) {
	w := NewWorld()

	e1 := w.Spawn()
	e2 := w.Spawn()

	if e1 == Nil || e2 == Nil {
		t.Fatal("Spawn should never return Nil")
	}
	if e1 == e2 {
		t.Fatal("Spawn should return distinct entities")
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", w.Len())
	}

	if !w.Despawn(e1) {
		t.Error("Despawn of live entity should succeed")
	}
	if w.Despawn(e1) {
		t.Error("second Despawn should report false")
	}
	if w.Alive(e1) {
		t.Error("despawned entity should not be alive")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}
	if w.Alive(Nil) {
		t.Error("Nil should never be alive")
	}
}

func TestStaleHandleDoesNotAlias(t *testing.T) {
	w := NewWorld()

	old := w.Spawn()
	w.Despawn(old)
	reused := w.Spawn()

	if reused.Index() != old.Index() {
		t.Fatalf("expected slot reuse, got %v after %v", reused, old)
	}
	if reused.Generation() == old.Generation() {
		t.Error("reused slot should carry a new generation")
	}
	if w.Alive(old) {
		t.Error("stale handle should not be alive after slot reuse")
	}
	if !w.Alive(reused) {
		t.Error("new handle should be alive")
	}
}

func TestStoreLifecycle(t *testing.T) {
	w := NewWorld()
	tags := NewStore[tag](w)
	counts := NewStore[int](w)

	a := w.Spawn()
	b := w.Spawn()
	c := w.Spawn()

	tags.Set(a, tag{"a"})
	tags.Set(b, tag{"b"})
	tags.Set(c, tag{"c"})
	counts.Set(b, 7)

	if got := tags.MustGet(b); got.name != "b" {
		t.Errorf("MustGet(b) = %v", got)
	}
	if got, ok := counts.Get(b); !ok || got != 7 {
		t.Errorf("Get(b) = %v, %v, expected 7, true", got, ok)
	}
	if _, ok := counts.Get(a); ok {
		t.Error("Get(a) should report a missing component")
	}

	// Update keeps position in iteration order
	tags.Set(a, tag{"a2"})
	if got := tags.Entities(); len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Errorf("Entities() = %v, expected insertion order [a b c]", got)
	}

	w.Despawn(b)
	if tags.Has(b) || counts.Has(b) {
		t.Error("Despawn should remove components from every store")
	}
	if got := tags.Entities(); len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Entities() after despawn = %v, expected [a c]", got)
	}
	if counts.Len() != 0 {
		t.Errorf("counts.Len() = %d, expected 0", counts.Len())
	}
}

func TestStoreSetOnDeadEntityPanics(t *testing.T) {
	w := NewWorld()
	tags := NewStore[tag](w)
	e := w.Spawn()
	w.Despawn(e)

	defer func() {
		if recover() == nil {
			t.Error("Set on a dead entity should panic")
		}
	}()
	tags.Set(e, tag{"ghost"})
}

func TestMustGetMissingPanics(t *testing.T) {
	w := NewWorld()
	tags := NewStore[tag](w)
	e := w.Spawn()

	defer func() {
		if recover() == nil {
			t.Error("MustGet of a missing component should panic")
		}
	}()
	tags.MustGet(e)
}
