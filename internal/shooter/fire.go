package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// muzzleInset is how far the muzzles sit inside the ship's edge, and how far
// in front of the hull a bullet appears.
const muzzleInset = 5.0

// Input is the per-tick input snapshot from the input collaborator.
// Fire is edge-triggered: true only on the tick the key went down.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool
	Fire      bool
}

// Weapons turns input into player velocity and bullets, and lets the enemy
// wing fire at random.
type Weapons struct {
	PlayerSpeed       float64
	PlayerBulletSpeed float64
	PlayerBulletHalf  core.Vec2
	EnemyBulletSpeed  float64
	EnemyBulletHalf   core.Vec2
}

// Steer sets the live player's velocity from the held direction keys.
// Left wins over right and up wins over down.
func (w *Weapons) Steer(store *Store, res *Resources, in Input) {
	player, ok := store.Get(res.Lifecycle.Player())
	if !ok {
		return
	}
	player.Vel = core.Vec2{
		X: axis(in.MoveLeft, -1, in.MoveRight, 1) * w.PlayerSpeed,
		Y: axis(in.MoveUp, 1, in.MoveDown, -1) * w.PlayerSpeed,
	}
}

// axis returns the sign of the first held key, checking first before second.
func axis(first bool, firstSign float64, second bool, secondSign float64) float64 {
	switch {
	case first:
		return firstSign
	case second:
		return secondSign
	default:
		return 0
	}
}

// PlayerFire spawns a pair of upward bullets from the ship's left and right
// muzzles. It returns the number of bullets spawned.
func (w *Weapons) PlayerFire(store *Store, res *Resources) int {
	player, ok := store.Get(res.Lifecycle.Player())
	if !ok {
		return 0
	}
	offset := player.Half.X - muzzleInset
	y := player.Pos.Y + player.Half.Y + muzzleInset
	vel := core.Vec2{Y: w.PlayerBulletSpeed}
	px := player.Pos.X

	// player may be invalidated by Spawn growing the slot slice
	store.Spawn(bullet(FactionPlayer, core.Vec2{X: px + offset, Y: y}, vel, w.PlayerBulletHalf))
	store.Spawn(bullet(FactionPlayer, core.Vec2{X: px - offset, Y: y}, vel, w.PlayerBulletHalf))
	return 2
}

// EnemyVolley makes every enemy fire one downward bullet with probability
// chance. It returns the number of bullets spawned.
func (w *Weapons) EnemyVolley(store *Store, rng *rand.Rand, chance float64, scratch []EntityID) ([]EntityID, int) {
	if chance <= 0 || rng.Float64() >= chance {
		return scratch, 0
	}
	scratch = store.Select(scratch[:0], Query{All: TagEnemy})
	vel := core.Vec2{Y: -w.EnemyBulletSpeed}
	for _, id := range scratch {
		e, _ := store.Get(id)
		pos := core.Vec2{X: e.Pos.X, Y: e.Pos.Y - e.Half.Y - muzzleInset}
		store.Spawn(bullet(FactionEnemy, pos, vel, w.EnemyBulletHalf))
	}
	return scratch, len(scratch)
}
