package shooter

// EntityID identifies an entity in a Store. The generation guards against
// stale IDs once a slot is reused.
type EntityID struct {
	index uint32
	gen   uint32
}

// NoEntity is the zero ID; it never refers to a live entity.
var NoEntity = EntityID{}

// IsZero reports whether the ID is NoEntity.
func (id EntityID) IsZero() bool {
	return id == NoEntity
}

type slot struct {
	entity Entity
	gen    uint32
	alive  bool
}

// Store is the entity table: a flat slice of slots, iterated by index.
// Freed slots are reused through a free list.
type Store struct {
	slots []slot
	free  []uint32
	live  int
}

// NewStore creates an empty store with room for capacity entities.
func NewStore(capacity int) *Store {
	return &Store{
		slots: make([]slot, 0, capacity),
	}
}

// Spawn inserts an entity and returns its new ID.
func (s *Store) Spawn(e Entity) EntityID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	sl.gen++
	sl.alive = true
	// gen starts at 1 so a live ID is never NoEntity
	e.ID = EntityID{index: idx, gen: sl.gen}
	sl.entity = e
	s.live++
	return e.ID
}

// Get returns the entity for id, or false if it has been despawned.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	if int(id.index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.index]
	if !sl.alive || sl.gen != id.gen {
		return nil, false
	}
	return &sl.entity, true
}

// Contains reports whether id refers to a live entity.
func (s *Store) Contains(id EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

// Despawn removes the entity immediately. Systems running inside a tick
// should go through Removals instead.
func (s *Store) Despawn(id EntityID) bool {
	if !s.Contains(id) {
		return false
	}
	sl := &s.slots[id.index]
	sl.alive = false
	sl.entity = Entity{}
	s.free = append(s.free, id.index)
	s.live--
	return true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.live
}

// Query selects entities that carry every tag in All and, when Faction is
// set, belong to that faction.
type Query struct {
	All     Tag
	Faction Faction
}

func (q Query) matches(e *Entity) bool {
	if !e.Tags.Has(q.All) {
		return false
	}
	return q.Faction == FactionNone || e.Faction == q.Faction
}

// Select appends the IDs of matching entities to dst in slot order.
func (s *Store) Select(dst []EntityID, q Query) []EntityID {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive && q.matches(&sl.entity) {
			dst = append(dst, sl.entity.ID)
		}
	}
	return dst
}

// Each calls fn for every matching entity in slot order.
// fn must not spawn or despawn entities.
func (s *Store) Each(q Query, fn func(e *Entity)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive && q.matches(&sl.entity) {
			fn(&sl.entity)
		}
	}
}

// Count returns the number of matching entities.
func (s *Store) Count(q Query) int {
	n := 0
	s.Each(q, func(*Entity) { n++ })
	return n
}

// Removals collects entities to delete at the end of a tick.
// Marking is idempotent and keeps first-mark order.
type Removals struct {
	marked map[EntityID]struct{}
	order  []EntityID
}

// NewRemovals creates an empty pending-removal set.
func NewRemovals() *Removals {
	return &Removals{marked: make(map[EntityID]struct{})}
}

// Mark schedules id for removal. It returns false if it was already marked.
func (r *Removals) Mark(id EntityID) bool {
	if _, ok := r.marked[id]; ok {
		return false
	}
	r.marked[id] = struct{}{}
	r.order = append(r.order, id)
	return true
}

// Has reports whether id is scheduled for removal.
func (r *Removals) Has(id EntityID) bool {
	_, ok := r.marked[id]
	return ok
}

// Len returns the number of pending removals.
func (r *Removals) Len() int {
	return len(r.order)
}

// Apply despawns every marked entity and resets the set.
// It returns the number of entities actually removed.
func (r *Removals) Apply(s *Store) int {
	n := 0
	for _, id := range r.order {
		if s.Despawn(id) {
			n++
		}
	}
	clear(r.marked)
	r.order = r.order[:0]
	return n
}
