package shooter

import "github.com/vovakirdan/tui-galaga/internal/core"

// Tag is a bitset of role facts attached to an entity.
type Tag uint8

const (
	TagPlayer Tag = 1 << iota // the player ship
	TagEnemy                  // an enemy ship
	TagBullet                 // a projectile; always carries an owning faction
)

// Has reports whether every bit in mask is set.
func (t Tag) Has(mask Tag) bool {
	return t&mask == mask
}

// Faction identifies which side an entity fights for.
type Faction uint8

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionEnemy
)

// BoundaryPolicy decides what happens when an entity reaches the arena edge.
type BoundaryPolicy uint8

const (
	BoundaryNone  BoundaryPolicy = iota // integrate freely
	DespawnOnExit                       // remove once past the edge plus margin
	ClampPlayer                         // keep inside the lower quarter band
	ClampEnemy                          // keep inside the arena
)

// String returns the policy name.
func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryNone:
		return "none"
	case DespawnOnExit:
		return "despawn-on-exit"
	case ClampPlayer:
		return "clamp-player"
	case ClampEnemy:
		return "clamp-enemy"
	default:
		return "unknown"
	}
}

// Entity is one simulation actor. Scale is fixed at 1.0 for every actor,
// so Half is used directly as the collision half-extent.
type Entity struct {
	ID      EntityID
	Tags    Tag
	Faction Faction
	Policy  BoundaryPolicy
	Pos     core.Vec2
	Vel     core.Vec2
	Half    core.Vec2
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.Box{Center: e.Pos, Half: e.Half}
}

// Kind returns the render identity derived from the entity's tags.
func (e *Entity) Kind() Kind {
	switch {
	case e.Tags.Has(TagBullet) && e.Faction == FactionPlayer:
		return KindPlayerBullet
	case e.Tags.Has(TagBullet):
		return KindEnemyBullet
	case e.Tags.Has(TagPlayer):
		return KindPlayer
	default:
		return KindEnemy
	}
}

func playerShip(pos, half core.Vec2) Entity {
	return Entity{
		Tags:    TagPlayer,
		Faction: FactionPlayer,
		Policy:  ClampPlayer,
		Pos:     pos,
		Half:    half,
	}
}

func enemyShip(pos, half core.Vec2) Entity {
	return Entity{
		Tags:    TagEnemy,
		Faction: FactionEnemy,
		Policy:  ClampEnemy,
		Pos:     pos,
		Half:    half,
	}
}

func bullet(owner Faction, pos, vel, half core.Vec2) Entity {
	return Entity{
		Tags:    TagBullet,
		Faction: owner,
		Policy:  DespawnOnExit,
		Pos:     pos,
		Vel:     vel,
		Half:    half,
	}
}
