package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
)

// TickEvents lists what happened during one tick.
type TickEvents struct {
	Tick          uint64
	Kills         int
	PlayerDied    bool
	PlayerRespawn bool
	EnemySpawned  bool
	PlayerShots   int
	EnemyShots    int
	Bounced       int
	Despawned     int
}

// Simulation owns the entity store and every piece of game state, and
// advances them one fixed tick at a time. It is not safe for concurrent use.
type Simulation struct {
	arena Arena
	delta float64
	tick  uint64
	rng   *rand.Rand

	store   *Store
	pending *Removals
	res     Resources

	weapons    Weapons
	scheduler  SpawnScheduler
	movement   MovementSystem
	collisions CollisionSystem
	difficulty *config.DifficultyManager
	fireChance float64

	scratch []EntityID
}

// New creates a simulation from a validated configuration. The arena size
// comes from cfg.Arena and stays fixed; rt supplies the tick rate and seed.
func New(cfg config.GalagaConfig, rt core.RuntimeConfig) *Simulation {
	arena := Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	delta := rt.FixedDelta()
	playerHalf := core.Vec2{X: cfg.Player.HalfWidth, Y: cfg.Player.HalfHeight}
	enemyHalf := core.Vec2{X: cfg.Enemy.HalfWidth, Y: cfg.Enemy.HalfHeight}

	return &Simulation{
		arena:   arena,
		delta:   delta,
		rng:     rand.New(rand.NewSource(rt.Seed)),
		store:   NewStore(64),
		pending: NewRemovals(),
		res: Resources{
			Lifecycle:  NewPlayerLifecycle(),
			Population: NewEnemyPopulation(cfg.Enemy.Max),
		},
		weapons: Weapons{
			PlayerSpeed:       cfg.Player.Speed,
			PlayerBulletSpeed: cfg.Player.BulletSpeed,
			PlayerBulletHalf:  core.Vec2{X: cfg.Player.BulletHalfSize, Y: cfg.Player.BulletHalfSize},
			EnemyBulletSpeed:  cfg.Enemy.BulletSpeed,
			EnemyBulletHalf:   core.Vec2{X: cfg.Enemy.BulletHalfSize, Y: cfg.Enemy.BulletHalfSize},
		},
		scheduler: SpawnScheduler{
			Arena:           arena,
			Inset:           cfg.Physics.WallInset,
			EnemyHalf:       enemyHalf,
			PlayerHalf:      playerHalf,
			RespawnCooldown: cfg.Player.RespawnTime,
			EnemyTimer:      NewIntervalTimer(cfg.Enemy.SpawnInterval, delta),
			RespawnTimer:    NewIntervalTimer(cfg.Player.RespawnInterval, delta),
		},
		movement: MovementSystem{
			Arena:     arena,
			BaseSpeed: cfg.Physics.BaseSpeed,
			Delta:     delta,
			Margin:    cfg.Physics.BoundaryMargin,
			Inset:     cfg.Physics.WallInset,
			Jitter:    cfg.Enemy.Jitter,
		},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		fireChance: cfg.Enemy.FireChance,
	}
}

// Tick advances the simulation by one fixed step. Phases run in strict order:
// input, scheduler, movement, collisions, cleanup.
func (s *Simulation) Tick(in Input) TickEvents {
	s.tick++
	now := s.Now()
	ev := TickEvents{Tick: s.tick}

	// Input and weapons
	s.weapons.Steer(s.store, &s.res, in)
	if in.Fire {
		ev.PlayerShots = s.weapons.PlayerFire(s.store, &s.res)
	}
	chance := s.difficulty.FireChance(s.fireChance, s.res.Score.Value(), int(s.tick))
	s.scratch, ev.EnemyShots = s.weapons.EnemyVolley(s.store, s.rng, chance, s.scratch)

	// Scheduler
	spawned := s.scheduler.Step(s.store, &s.res, s.rng, now)
	ev.EnemySpawned = !spawned.Enemy.IsZero()
	ev.PlayerRespawn = !spawned.Respawned.IsZero()

	// Movement
	s.movement.RandomizeEnemies(s.store, s.rng)
	s.movement.Run(s.store, s.pending)

	// Collisions
	hits := s.collisions.Run(s.store, s.pending, &s.res, now)
	ev.Kills = hits.Kills
	ev.PlayerDied = hits.PlayerDied
	ev.Bounced = hits.Bounced

	// Cleanup
	ev.Despawned = s.pending.Apply(s.store)
	return ev
}

// Now returns the simulated time in seconds.
func (s *Simulation) Now() float64 {
	return float64(s.tick) * s.delta
}

// Ticks returns the number of ticks run so far.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Arena returns the play area.
func (s *Simulation) Arena() Arena {
	return s.arena
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.res.Score.Value()
}

// LiveEnemies returns the enemy population count.
func (s *Simulation) LiveEnemies() int {
	return s.res.Population.Live()
}

// Lifecycle returns the player lifecycle.
func (s *Simulation) Lifecycle() PlayerLifecycle {
	return s.res.Lifecycle
}

// Store exposes the entity table for read access by tests and tools.
func (s *Simulation) Store() *Store {
	return s.store
}
