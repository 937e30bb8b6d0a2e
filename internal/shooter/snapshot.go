package shooter

import "github.com/vovakirdan/tui-galaga/internal/core"

// Kind is the render identity of an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player-bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	default:
		return "unknown"
	}
}

// Color returns the color the renderer should use for this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindPlayer:
		return core.ColorBlue
	case KindEnemy:
		return core.ColorRed
	case KindPlayerBullet:
		return core.ColorGreen
	case KindEnemyBullet:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// ScoreColor is the HUD color for the score readout.
const ScoreColor = core.ColorGray

// Sprite is the read-only view of one entity.
type Sprite struct {
	ID   EntityID
	Kind Kind
	Pos  core.Vec2
	Half core.Vec2
}

// Snapshot is the state published to the renderer after each tick.
type Snapshot struct {
	Tick        uint64
	Time        float64
	Arena       Arena
	Score       int
	PlayerAlive bool
	LiveEnemies int
	MaxEnemies  int
	Sprites     []Sprite
}

// Snapshot copies the current state. dst's sprite slice is reused when given.
func (s *Simulation) Snapshot(dst *Snapshot) Snapshot {
	var sprites []Sprite
	if dst != nil {
		sprites = dst.Sprites[:0]
	}
	s.store.Each(Query{}, func(e *Entity) {
		sprites = append(sprites, Sprite{
			ID:   e.ID,
			Kind: e.Kind(),
			Pos:  e.Pos,
			Half: e.Half,
		})
	})

	snap := Snapshot{
		Tick:        s.tick,
		Time:        s.Now(),
		Arena:       s.arena,
		Score:       s.res.Score.Value(),
		PlayerAlive: s.res.Lifecycle.Alive(),
		LiveEnemies: s.res.Population.Live(),
		MaxEnemies:  s.res.Population.Max(),
		Sprites:     sprites,
	}
	if dst != nil {
		*dst = snap
	}
	return snap
}
