// Package shooter implements the per-tick simulation of a vertical
// space shooter: movement with boundary policies, AABB collisions,
// timed enemy spawning and player respawn, and score bookkeeping.
//
// Arena coordinates put the origin at the centre with +y pointing up.
// Nothing in this package performs I/O; a Simulation is driven one fixed
// tick at a time by a frame driver and publishes a Snapshot for rendering.
package shooter

// Arena is the play area, fixed for the lifetime of a Simulation.
type Arena struct {
	Width  float64
	Height float64
}

// HalfWidth returns half the arena width.
func (a Arena) HalfWidth() float64 {
	return a.Width / 2
}

// HalfHeight returns half the arena height.
func (a Arena) HalfHeight() float64 {
	return a.Height / 2
}

// Top returns the y coordinate of the top edge.
func (a Arena) Top() float64 {
	return a.Height / 2
}

// Bottom returns the y coordinate of the bottom edge.
func (a Arena) Bottom() float64 {
	return -a.Height / 2
}

// PlayerCeiling is the highest y the player may reach: a quarter of the
// arena height below centre.
func (a Arena) PlayerCeiling() float64 {
	return -a.Height / 4
}
