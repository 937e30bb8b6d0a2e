package shooter

// LifeState is the player's lifecycle state.
type LifeState uint8

const (
	PlayerDead LifeState = iota
	PlayerAlive
)

// String returns the state name.
func (s LifeState) String() string {
	if s == PlayerAlive {
		return "alive"
	}
	return "dead"
}

// neverDied marks a lifecycle that has not recorded a death yet.
const neverDied = -1.0

// PlayerLifecycle is the two-state player machine. It starts Dead with no
// recorded death, so the first respawn is not gated by the cooldown.
//
//	Dead  -> Alive  respawn timer, once the cooldown has elapsed
//	Alive -> Dead   enemy bullet hit
type PlayerLifecycle struct {
	state     LifeState
	lastDeath float64
	player    EntityID
}

// NewPlayerLifecycle returns the initial lifecycle.
func NewPlayerLifecycle() PlayerLifecycle {
	return PlayerLifecycle{state: PlayerDead, lastDeath: neverDied}
}

// State returns the current state.
func (l PlayerLifecycle) State() LifeState {
	return l.state
}

// Alive reports whether a player entity currently exists.
func (l PlayerLifecycle) Alive() bool {
	return l.state == PlayerAlive
}

// Player returns the live player entity, or NoEntity while dead.
func (l PlayerLifecycle) Player() EntityID {
	return l.player
}

// LastDeath returns the time of the last death and whether one occurred.
func (l PlayerLifecycle) LastDeath() (float64, bool) {
	return l.lastDeath, l.lastDeath != neverDied
}

// CanRespawn reports whether a respawn at now is allowed.
func (l PlayerLifecycle) CanRespawn(now, cooldown float64) bool {
	if l.state == PlayerAlive {
		return false
	}
	return l.lastDeath == neverDied || now-l.lastDeath >= cooldown
}

func (l *PlayerLifecycle) spawned(id EntityID) {
	l.state = PlayerAlive
	l.player = id
}

func (l *PlayerLifecycle) died(now float64) {
	l.state = PlayerDead
	l.lastDeath = now
	l.player = NoEntity
}
