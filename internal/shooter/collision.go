package shooter

// Resources is the mutable game state shared between phases. Each field is
// mutated only through the collision and spawn contracts.
type Resources struct {
	Lifecycle  PlayerLifecycle
	Population EnemyPopulation
	Score      Score
}

// CollisionOutcome summarises one collision pass.
type CollisionOutcome struct {
	Kills      int  // player bullets that destroyed an enemy
	PlayerDied bool // an enemy bullet hit the player
	Bounced    int  // enemies whose velocity was inverted
}

// CollisionSystem resolves overlaps between role-tagged entity sets.
// The zero value is ready to use; it keeps scratch buffers between ticks.
type CollisionSystem struct {
	bullets  []EntityID
	targets  []EntityID
	resolved map[EntityID]struct{}
	bounced  []bool
}

// Run performs the three passes in order: player bullets against enemies,
// enemy bullets against the player, then enemy against enemy.
func (c *CollisionSystem) Run(store *Store, pending *Removals, res *Resources, now float64) CollisionOutcome {
	var out CollisionOutcome
	out.Kills = c.playerBulletsVsEnemies(store, pending, res)
	out.PlayerDied = c.enemyBulletsVsPlayer(store, pending, res, now)
	out.Bounced = c.enemiesVsEnemies(store, pending)
	return out
}

// playerBulletsVsEnemies destroys each overlapping bullet/enemy pair. An
// entity is resolved at most once per tick; the first match in slot order wins.
func (c *CollisionSystem) playerBulletsVsEnemies(store *Store, pending *Removals, res *Resources) int {
	if c.resolved == nil {
		c.resolved = make(map[EntityID]struct{})
	}
	clear(c.resolved)

	c.bullets = store.Select(c.bullets[:0], Query{All: TagBullet, Faction: FactionPlayer})
	c.targets = store.Select(c.targets[:0], Query{All: TagEnemy})

	kills := 0
	for _, bid := range c.bullets {
		b, _ := store.Get(bid)
		for _, eid := range c.targets {
			if _, done := c.resolved[eid]; done {
				continue
			}
			e, _ := store.Get(eid)
			if !b.Box().Overlaps(e.Box()) {
				continue
			}

			pending.Mark(eid)
			pending.Mark(bid)
			c.resolved[eid] = struct{}{}
			c.resolved[bid] = struct{}{}
			res.Population.Remove()
			res.Score.Increment()
			kills++
			break
		}
	}
	return kills
}

// enemyBulletsVsPlayer kills the player on the first overlapping enemy
// bullet. A death resets the score and clears every player bullet.
func (c *CollisionSystem) enemyBulletsVsPlayer(store *Store, pending *Removals, res *Resources, now float64) bool {
	if !res.Lifecycle.Alive() {
		return false
	}
	pid := res.Lifecycle.Player()
	player, ok := store.Get(pid)
	if !ok {
		return false
	}
	pbox := player.Box()

	c.bullets = store.Select(c.bullets[:0], Query{All: TagBullet, Faction: FactionEnemy})
	for _, bid := range c.bullets {
		b, _ := store.Get(bid)
		if !b.Box().Overlaps(pbox) {
			continue
		}

		pending.Mark(pid)
		res.Lifecycle.died(now)
		res.Score.Reset()
		pending.Mark(bid)
		store.Each(Query{All: TagBullet, Faction: FactionPlayer}, func(e *Entity) {
			pending.Mark(e.ID)
		})
		return true
	}
	return false
}

// enemiesVsEnemies inverts the velocity of every enemy that overlaps
// another. Each enemy is inverted once per tick no matter how many
// neighbours it touches. Enemies killed this tick are ignored.
func (c *CollisionSystem) enemiesVsEnemies(store *Store, pending *Removals) int {
	c.targets = c.targets[:0]
	store.Each(Query{All: TagEnemy}, func(e *Entity) {
		if !pending.Has(e.ID) {
			c.targets = append(c.targets, e.ID)
		}
	})

	n := len(c.targets)
	if cap(c.bounced) < n {
		c.bounced = make([]bool, n)
	}
	c.bounced = c.bounced[:n]
	clear(c.bounced)

	for i := 0; i < n; i++ {
		a, _ := store.Get(c.targets[i])
		for j := i + 1; j < n; j++ {
			b, _ := store.Get(c.targets[j])
			if a.Box().Overlaps(b.Box()) {
				c.bounced[i] = true
				c.bounced[j] = true
			}
		}
	}

	count := 0
	for i, hit := range c.bounced {
		if !hit {
			continue
		}
		e, _ := store.Get(c.targets[i])
		e.Vel = e.Vel.Neg()
		count++
	}
	return count
}
