package shooter

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
)

// newTestSim builds a simulation with the default config, tweaked by mutate.
func newTestSim(t *testing.T, seed int64, mutate func(*config.GalagaConfig)) *Simulation {
	t.Helper()
	cfg := config.DefaultGalagaConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return New(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
}

func quiet(cfg *config.GalagaConfig) {
	cfg.Enemy.FireChance = 0
	cfg.Difficulty.Enabled = false
}

// spawnPlayerNow puts the player on the field without waiting for the timer.
func spawnPlayerNow(t *testing.T, s *Simulation) *Entity {
	t.Helper()
	id := s.scheduler.RespawnPlayer(s.store, &s.res, s.Now())
	p, ok := s.store.Get(id)
	if !ok {
		t.Fatal("player did not spawn")
	}
	return p
}

func TestOutOfBoundsBulletGoneAfterTick(t *testing.T) {
	s := newTestSim(t, 1, quiet)
	id := s.store.Spawn(bullet(FactionPlayer, core.Vec2{X: 0, Y: 512}, core.Vec2{}, bulletHalf))

	ev := s.Tick(Input{})

	if s.store.Contains(id) {
		t.Error("bullet beyond the margin should be removed by end of tick")
	}
	if ev.Despawned != 1 {
		t.Errorf("Despawned = %d, expected 1", ev.Despawned)
	}
}

func TestFirstSpawnsOnTimer(t *testing.T) {
	s := newTestSim(t, 1, quiet)

	for i := 1; i < 30; i++ {
		ev := s.Tick(Input{})
		if ev.PlayerRespawn || ev.EnemySpawned {
			t.Fatalf("nothing should spawn before the first timer fires, tick %d", i)
		}
	}
	ev := s.Tick(Input{})
	if !ev.PlayerRespawn || !ev.EnemySpawned {
		t.Errorf("tick 30 events = %+v, expected player and enemy spawns", ev)
	}
	if !s.Lifecycle().Alive() || s.LiveEnemies() != 1 {
		t.Errorf("alive=%v live=%d", s.Lifecycle().Alive(), s.LiveEnemies())
	}
}

func TestSteer(t *testing.T) {
	step := 5 * 100.0 / 60.0

	tests := []struct {
		name string
		in   Input
		dx   float64
		dy   float64
	}{
		{"idle", Input{}, 0, 0},
		{"left", Input{MoveLeft: true}, -step, 0},
		{"right", Input{MoveRight: true}, step, 0},
		{"left wins", Input{MoveLeft: true, MoveRight: true}, -step, 0},
		{"up", Input{MoveUp: true}, 0, step},
		{"up wins", Input{MoveUp: true, MoveDown: true}, 0, step},
		{"diagonal", Input{MoveRight: true, MoveUp: true}, step, step},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, 1, quiet)
			p := spawnPlayerNow(t, s)
			id := p.ID
			start := p.Pos

			s.Tick(tc.in)

			p, _ = s.store.Get(id)
			if !approx(p.Pos.X-start.X, tc.dx) || !approx(p.Pos.Y-start.Y, tc.dy) {
				t.Errorf("moved by (%v, %v), expected (%v, %v)",
					p.Pos.X-start.X, p.Pos.Y-start.Y, tc.dx, tc.dy)
			}
		})
	}
}

func TestPlayerFireSpawnsPair(t *testing.T) {
	s := newTestSim(t, 1, quiet)
	spawnPlayerNow(t, s)

	ev := s.Tick(Input{Fire: true})
	if ev.PlayerShots != 2 {
		t.Fatalf("PlayerShots = %d, expected 2", ev.PlayerShots)
	}

	shots := s.store.Select(nil, Query{All: TagBullet, Faction: FactionPlayer})
	if len(shots) != 2 {
		t.Fatalf("player bullets = %d, expected 2", len(shots))
	}
	wantY := -480.0 + 15 + 5 + 10*100.0/60.0
	xs := map[float64]bool{}
	for _, id := range shots {
		b, _ := s.store.Get(id)
		xs[b.Pos.X] = true
		if !approx(b.Pos.Y, wantY) {
			t.Errorf("bullet y = %v, expected %v", b.Pos.Y, wantY)
		}
		if b.Vel != (core.Vec2{Y: 10}) {
			t.Errorf("bullet velocity = %+v", b.Vel)
		}
	}
	if !xs[-10] || !xs[10] {
		t.Errorf("bullet x positions = %v, expected -10 and 10", xs)
	}
}

func TestFireWhileDeadDoesNothing(t *testing.T) {
	s := newTestSim(t, 1, quiet)

	ev := s.Tick(Input{Fire: true})
	if ev.PlayerShots != 0 {
		t.Errorf("PlayerShots = %d, expected 0", ev.PlayerShots)
	}
	if n := s.store.Count(Query{All: TagBullet}); n != 0 {
		t.Errorf("bullets = %d, expected 0", n)
	}
}

func TestEnemyVolley(t *testing.T) {
	s := newTestSim(t, 1, func(cfg *config.GalagaConfig) {
		cfg.Enemy.FireChance = 1
		cfg.Difficulty.Enabled = false
	})
	rng := rand.New(rand.NewSource(9))
	s.scheduler.SpawnEnemy(s.store, &s.res, rng)
	s.scheduler.SpawnEnemy(s.store, &s.res, rng)

	ev := s.Tick(Input{})
	if ev.EnemyShots != 2 {
		t.Fatalf("EnemyShots = %d, expected 2", ev.EnemyShots)
	}
	s.store.Each(Query{All: TagBullet}, func(e *Entity) {
		if e.Faction != FactionEnemy {
			t.Errorf("unexpected bullet faction %v", e.Faction)
		}
		if e.Vel != (core.Vec2{Y: -5}) {
			t.Errorf("enemy bullet velocity = %+v", e.Vel)
		}
	})
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []Snapshot {
		s := newTestSim(t, 42, nil)
		var snaps []Snapshot
		for i := 0; i < 600; i++ {
			in := Input{
				MoveLeft:  i%90 < 40,
				MoveRight: i%90 >= 50,
				MoveUp:    i%200 < 30,
				Fire:      i%7 == 0,
			}
			s.Tick(in)
			if i%50 == 0 {
				snaps = append(snaps, s.Snapshot(nil))
			}
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and input should replay identically")
	}
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	s := newTestSim(t, 7, func(cfg *config.GalagaConfig) {
		cfg.Enemy.FireChance = 0.2
	})
	rng := rand.New(rand.NewSource(11))
	arena := s.Arena()
	bound := core.Vec2{X: arena.HalfWidth() + 10, Y: arena.HalfHeight() + 10}

	deaths, kills := 0, 0
	for i := 0; i < 5000; i++ {
		in := Input{
			MoveLeft:  rng.Intn(3) == 0,
			MoveRight: rng.Intn(3) == 0,
			MoveUp:    rng.Intn(3) == 0,
			MoveDown:  rng.Intn(3) == 0,
			Fire:      rng.Intn(4) == 0,
		}
		ev := s.Tick(in)
		kills += ev.Kills
		if ev.PlayerDied {
			deaths++
			if s.Score() != 0 {
				t.Fatalf("tick %d: score %d after death", ev.Tick, s.Score())
			}
			if n := s.store.Count(Query{All: TagBullet, Faction: FactionPlayer}); n != 0 {
				t.Fatalf("tick %d: %d player bullets survived a death", ev.Tick, n)
			}
		}

		live := s.LiveEnemies()
		if live < 0 || live > 3 {
			t.Fatalf("tick %d: live enemies %d out of range", ev.Tick, live)
		}
		if n := s.store.Count(Query{All: TagEnemy}); n != live {
			t.Fatalf("tick %d: %d enemy entities, population says %d", ev.Tick, n, live)
		}
		if s.Score() < 0 {
			t.Fatalf("tick %d: negative score", ev.Tick)
		}

		players := s.store.Select(nil, Query{All: TagPlayer})
		if s.Lifecycle().Alive() != (len(players) == 1) || len(players) > 1 {
			t.Fatalf("tick %d: %d player entities, alive=%v", ev.Tick, len(players), s.Lifecycle().Alive())
		}
		for _, id := range players {
			p, _ := s.store.Get(id)
			if p.Pos.Y > arena.PlayerCeiling() || p.Pos.X < -180 || p.Pos.X > 180 {
				t.Fatalf("tick %d: player escaped to %+v", ev.Tick, p.Pos)
			}
		}

		s.store.Each(Query{All: TagBullet}, func(e *Entity) {
			if core.AbsF(e.Pos.X) > bound.X || core.AbsF(e.Pos.Y) > bound.Y {
				t.Fatalf("tick %d: bullet outside bounds at %+v", ev.Tick, e.Pos)
			}
		})
	}

	if kills == 0 {
		t.Error("expected at least one kill in a long run with constant fire")
	}
	t.Logf("%d kills, %d deaths", kills, deaths)
}

func TestClockAdvancesPerTick(t *testing.T) {
	s := newTestSim(t, 1, quiet)
	s.Tick(Input{})
	s.Tick(Input{})
	if s.Ticks() != 2 || !approx(s.Now(), 2.0/60.0) {
		t.Errorf("ticks=%d now=%v", s.Ticks(), s.Now())
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSim(t, 1, quiet)
	spawnPlayerNow(t, s)
	s.scheduler.SpawnEnemy(s.store, &s.res, s.rng)
	s.Tick(Input{Fire: true})

	var buf Snapshot
	snap := s.Snapshot(&buf)

	if !snap.PlayerAlive || snap.LiveEnemies != 1 || snap.MaxEnemies != 3 {
		t.Errorf("snapshot header %+v", snap)
	}
	if snap.Tick != 1 || buf.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}

	counts := map[Kind]int{}
	for _, sp := range snap.Sprites {
		counts[sp.Kind]++
	}
	expected := map[Kind]int{KindPlayer: 1, KindEnemy: 1, KindPlayerBullet: 2}
	if !reflect.DeepEqual(counts, expected) {
		t.Errorf("sprite kinds = %v, expected %v", counts, expected)
	}

	colors := map[Kind]core.Color{
		KindPlayer:       core.ColorBlue,
		KindEnemy:        core.ColorRed,
		KindPlayerBullet: core.ColorGreen,
		KindEnemyBullet:  core.ColorYellow,
	}
	for k, c := range colors {
		if k.Color() != c {
			t.Errorf("%v color = %v, expected %v", k, k.Color(), c)
		}
	}
}
