package shooter

// Score counts confirmed kills since the player's last death.
// Only the collision system mutates it.
type Score struct {
	value int
}

// Increment adds one confirmed kill.
func (s *Score) Increment() {
	s.value++
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s Score) Value() int {
	return s.value
}

// EnemyPopulation tracks live enemies against a fixed cap.
// Invariant: 0 <= Live() <= Max().
type EnemyPopulation struct {
	live int
	max  int
}

// NewEnemyPopulation creates an empty population with the given cap.
func NewEnemyPopulation(max int) EnemyPopulation {
	if max < 0 {
		max = 0
	}
	return EnemyPopulation{max: max}
}

// Live returns the number of live enemies.
func (p EnemyPopulation) Live() int {
	return p.live
}

// Max returns the population cap.
func (p EnemyPopulation) Max() int {
	return p.max
}

// HasRoom reports whether another enemy may spawn.
func (p EnemyPopulation) HasRoom() bool {
	return p.live < p.max
}

// Add records a spawned enemy. It returns false at the cap.
func (p *EnemyPopulation) Add() bool {
	if !p.HasRoom() {
		return false
	}
	p.live++
	return true
}

// Remove records a killed enemy.
func (p *EnemyPopulation) Remove() {
	if p.live > 0 {
		p.live--
	}
}
