package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// MovementSystem integrates velocity into position and applies each
// entity's boundary policy.
type MovementSystem struct {
	Arena     Arena
	BaseSpeed float64 // arena units per second per unit of velocity
	Delta     float64 // fixed tick duration in seconds
	Margin    float64 // DespawnOnExit slack past the arena edge
	Inset     float64 // gap kept between clamped ships and the wall
	Jitter    float64 // enemy velocity range is [-Jitter, Jitter)
}

// RandomizeEnemies re-rolls every enemy's velocity uniformly on both axes.
// It runs once per tick, before Run.
func (m *MovementSystem) RandomizeEnemies(store *Store, rng *rand.Rand) {
	if m.Jitter <= 0 {
		return
	}
	store.Each(Query{All: TagEnemy}, func(e *Entity) {
		e.Vel.X = (rng.Float64()*2 - 1) * m.Jitter
		e.Vel.Y = (rng.Float64()*2 - 1) * m.Jitter
	})
}

// Run moves every entity by one tick. Entities that leave the arena under
// DespawnOnExit are marked in pending; they stay in the store until the
// end-of-tick cleanup so later phases can still see them.
func (m *MovementSystem) Run(store *Store, pending *Removals) {
	step := m.BaseSpeed * m.Delta
	store.Each(Query{}, func(e *Entity) {
		e.Pos = e.Pos.Add(e.Vel.Scale(step))

		switch e.Policy {
		case DespawnOnExit:
			if m.outside(e.Pos) {
				pending.Mark(e.ID)
			}
		case ClampPlayer:
			e.Pos = m.clampPlayer(e.Pos, e.Half)
		case ClampEnemy:
			e.Pos = m.clampEnemy(e.Pos, e.Half)
		}
	})
}

func (m *MovementSystem) outside(p core.Vec2) bool {
	hw := m.Arena.HalfWidth() + m.Margin
	hh := m.Arena.HalfHeight() + m.Margin
	return p.X > hw || p.X < -hw || p.Y > hh || p.Y < -hh
}

func (m *MovementSystem) clampPlayer(p, half core.Vec2) core.Vec2 {
	xLimit := m.Arena.HalfWidth() - half.X - m.Inset
	floor := m.Arena.Bottom() + half.Y + m.Inset
	ceiling := m.Arena.PlayerCeiling()
	return core.Vec2{
		X: core.ClampF(p.X, -xLimit, xLimit),
		Y: clampBand(p.Y, floor, ceiling),
	}
}

func (m *MovementSystem) clampEnemy(p, half core.Vec2) core.Vec2 {
	xLimit := m.Arena.HalfWidth() - half.X - m.Inset
	yLimit := m.Arena.HalfHeight() - half.Y - m.Inset
	return core.Vec2{
		X: core.ClampF(p.X, -xLimit, xLimit),
		Y: core.ClampF(p.Y, -yLimit, yLimit),
	}
}

// clampBand clamps v to [lo, hi]. When the band is inverted the upper
// bound wins, so the player never rises above the ceiling.
func clampBand(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
