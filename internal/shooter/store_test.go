package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

func TestStoreSpawnGetDespawn(t *testing.T) {
	s := NewStore(4)

	id := s.Spawn(enemyShip(core.Vec2{X: 1, Y: 2}, core.Vec2{X: 15, Y: 15}))
	if id.IsZero() {
		t.Fatal("Spawn() returned NoEntity")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}

	e, ok := s.Get(id)
	if !ok {
		t.Fatal("Get() should find the spawned entity")
	}
	if e.ID != id || e.Pos != (core.Vec2{X: 1, Y: 2}) || e.Policy != ClampEnemy {
		t.Errorf("unexpected entity %+v", *e)
	}

	if !s.Despawn(id) {
		t.Error("Despawn() should succeed for a live entity")
	}
	if s.Despawn(id) {
		t.Error("second Despawn() should report false")
	}
	if s.Contains(id) {
		t.Error("despawned entity should not be found")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestStoreStaleIDAfterReuse(t *testing.T) {
	s := NewStore(1)

	old := s.Spawn(enemyShip(core.Vec2{}, core.Vec2{X: 1, Y: 1}))
	s.Despawn(old)
	fresh := s.Spawn(playerShip(core.Vec2{}, core.Vec2{X: 1, Y: 1}))

	if fresh.index != old.index {
		t.Fatalf("slot should be reused, got index %d and %d", old.index, fresh.index)
	}
	if s.Contains(old) {
		t.Error("stale ID must not resolve to the new occupant")
	}
	if !s.Contains(fresh) {
		t.Error("fresh ID should resolve")
	}
}

func TestStoreSelect(t *testing.T) {
	s := NewStore(8)
	half := core.Vec2{X: 1, Y: 1}

	e1 := s.Spawn(enemyShip(core.Vec2{}, half))
	pb := s.Spawn(bullet(FactionPlayer, core.Vec2{}, core.Vec2{}, half))
	eb := s.Spawn(bullet(FactionEnemy, core.Vec2{}, core.Vec2{}, half))
	e2 := s.Spawn(enemyShip(core.Vec2{}, half))
	p := s.Spawn(playerShip(core.Vec2{}, half))

	tests := []struct {
		name     string
		q        Query
		expected []EntityID
	}{
		{"everything", Query{}, []EntityID{e1, pb, eb, e2, p}},
		{"enemies", Query{All: TagEnemy}, []EntityID{e1, e2}},
		{"all bullets", Query{All: TagBullet}, []EntityID{pb, eb}},
		{"player bullets", Query{All: TagBullet, Faction: FactionPlayer}, []EntityID{pb}},
		{"enemy bullets", Query{All: TagBullet, Faction: FactionEnemy}, []EntityID{eb}},
		{"player", Query{All: TagPlayer}, []EntityID{p}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Select(nil, tc.q)
			if len(got) != len(tc.expected) {
				t.Fatalf("Select() returned %d ids, expected %d", len(got), len(tc.expected))
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Select()[%d] = %+v, expected %+v", i, got[i], tc.expected[i])
				}
			}
			if n := s.Count(tc.q); n != len(tc.expected) {
				t.Errorf("Count() = %d, expected %d", n, len(tc.expected))
			}
		})
	}
}

func TestRemovals(t *testing.T) {
	s := NewStore(4)
	a := s.Spawn(enemyShip(core.Vec2{}, core.Vec2{X: 1, Y: 1}))
	b := s.Spawn(enemyShip(core.Vec2{}, core.Vec2{X: 1, Y: 1}))

	r := NewRemovals()
	if !r.Mark(a) {
		t.Error("first Mark() should return true")
	}
	if r.Mark(a) {
		t.Error("second Mark() of the same id should return false")
	}
	if !r.Has(a) || r.Has(b) {
		t.Error("Has() reports wrong membership")
	}

	// Marked entities stay readable until Apply
	if !s.Contains(a) {
		t.Error("marking must not remove the entity")
	}

	if n := r.Apply(s); n != 1 {
		t.Errorf("Apply() removed %d, expected 1", n)
	}
	if s.Contains(a) || !s.Contains(b) {
		t.Error("Apply() removed the wrong entities")
	}
	if r.Len() != 0 || r.Has(a) {
		t.Error("Apply() should reset the set")
	}
}

func TestEntityKind(t *testing.T) {
	half := core.Vec2{X: 1, Y: 1}
	tests := []struct {
		e    Entity
		kind Kind
	}{
		{playerShip(core.Vec2{}, half), KindPlayer},
		{enemyShip(core.Vec2{}, half), KindEnemy},
		{bullet(FactionPlayer, core.Vec2{}, core.Vec2{}, half), KindPlayerBullet},
		{bullet(FactionEnemy, core.Vec2{}, core.Vec2{}, half), KindEnemyBullet},
	}
	for _, tc := range tests {
		if got := tc.e.Kind(); got != tc.kind {
			t.Errorf("Kind() = %v, expected %v", got, tc.kind)
		}
	}

	b := bullet(FactionEnemy, core.Vec2{}, core.Vec2{}, half)
	if b.Policy != DespawnOnExit {
		t.Errorf("bullets must use DespawnOnExit, got %v", b.Policy)
	}
}
