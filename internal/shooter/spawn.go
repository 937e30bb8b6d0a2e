package shooter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// IntervalTimer fires every N ticks. Counting ticks instead of summing
// float seconds keeps the cadence exact at any tick rate.
type IntervalTimer struct {
	every int
	count int
}

// NewIntervalTimer creates a timer firing every period seconds at the given
// tick duration. The period is rounded to whole ticks, minimum one.
func NewIntervalTimer(period, delta float64) IntervalTimer {
	every := 1
	if delta > 0 {
		every = max(1, int(math.Round(period/delta)))
	}
	return IntervalTimer{every: every}
}

// Step advances the timer by one tick and reports whether it fired.
func (t *IntervalTimer) Step() bool {
	t.count++
	if t.count >= t.every {
		t.count = 0
		return true
	}
	return false
}

// Every returns the period in ticks.
func (t IntervalTimer) Every() int {
	return t.every
}

// SpawnOutcome reports what the scheduler did this tick.
type SpawnOutcome struct {
	Enemy     EntityID // NoEntity unless an enemy spawned
	Respawned EntityID // NoEntity unless the player respawned
}

// SpawnScheduler owns the enemy spawn timer and the player respawn timer.
type SpawnScheduler struct {
	Arena           Arena
	Inset           float64
	EnemyHalf       core.Vec2
	PlayerHalf      core.Vec2
	RespawnCooldown float64

	EnemyTimer   IntervalTimer
	RespawnTimer IntervalTimer
}

// Step advances both timers and runs whichever fired.
func (s *SpawnScheduler) Step(store *Store, res *Resources, rng *rand.Rand, now float64) SpawnOutcome {
	var out SpawnOutcome
	if s.EnemyTimer.Step() {
		out.Enemy = s.SpawnEnemy(store, res, rng)
	}
	if s.RespawnTimer.Step() {
		out.Respawned = s.RespawnPlayer(store, res, now)
	}
	return out
}

// SpawnEnemy creates one enemy at a random x along the top edge if the
// population has room. At the cap it does nothing and returns NoEntity.
func (s *SpawnScheduler) SpawnEnemy(store *Store, res *Resources, rng *rand.Rand) EntityID {
	if !res.Population.Add() {
		return NoEntity
	}
	x := (rng.Float64() - 0.5) * s.Arena.Width
	y := s.Arena.Top() - s.EnemyHalf.Y - s.Inset
	return store.Spawn(enemyShip(core.Vec2{X: x, Y: y}, s.EnemyHalf))
}

// RespawnPlayer creates the player at bottom centre when the lifecycle is
// Dead and the cooldown has elapsed. While Alive it is a no-op.
func (s *SpawnScheduler) RespawnPlayer(store *Store, res *Resources, now float64) EntityID {
	if !res.Lifecycle.CanRespawn(now, s.RespawnCooldown) {
		return NoEntity
	}
	id := store.Spawn(playerShip(s.PlayerSpawnPoint(), s.PlayerHalf))
	res.Lifecycle.spawned(id)
	return id
}

// PlayerSpawnPoint is the fixed bottom-centre respawn position.
func (s *SpawnScheduler) PlayerSpawnPoint() core.Vec2 {
	return core.Vec2{X: 0, Y: s.Arena.Bottom() + s.PlayerHalf.Y + s.Inset}
}
