package sim

// SweepResult summarises one collision pass.
type SweepResult struct {
	Destroyed []*Asteroid // asteroids exploded by projectiles
	Spawned   []*Asteroid // fragments adopted after the pass
	Hits      int         // projectile-asteroid contacts
	PlayerHit bool
}

// Sweep tests every projectile against every asteroid that was live when the
// pass began. A hit explodes the asteroid and destroys the projectile.
// Fragments are adopted only after all pairs have been tested, so they cannot
// be hit in the pass that made them. The player is tested last.
func Sweep(pm *ProjectileManager, am *AsteroidManager, player *Player) SweepResult {
	var res SweepResult

	projectiles := make([]*Projectile, 0, pm.Len())
	for _, p := range pm.Projectiles() {
		if p.B.IsLive() {
			projectiles = append(projectiles, p)
		}
	}
	asteroids := am.Live()

	var staged []*Asteroid
	for _, p := range projectiles {
		for _, a := range asteroids {
			if !a.CollidesWith(p) {
				continue
			}
			staged = append(staged, am.Explode(a)...)
			p.Destroy()
			res.Destroyed = append(res.Destroyed, a)
			res.Hits++
		}
	}

	if player != nil && player.B.IsLive() {
		for _, a := range asteroids {
			if !player.CollidesWith(a) {
				continue
			}
			player.OnCollision(a)
			a.OnCollision(player)
			res.PlayerHit = true
			break
		}
	}

	for _, a := range staged {
		am.AddAsteroid(a)
	}
	res.Spawned = staged
	return res
}
