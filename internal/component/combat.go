package component

// Combat drives the periodic fire loop of a tower.
type Combat struct {
	FireInterval   float64 // Seconds between volleys
	FireCooldown   float64 // Time left until the next volley
	BulletCount    int
	BulletSpeed    float64
	BulletLifetime float64
	KillDistance   float64
	Homing         bool
	// Range is upgraded but target acquisition does not consult it.
	Range float64
}

// UpgradeSpeed raises the projectile speed.
func (c *Combat) UpgradeSpeed(delta float64) {
	c.BulletSpeed += delta
}

// UpgradeRange raises the stored range.
func (c *Combat) UpgradeRange(delta float64) {
	c.Range += delta
}

// IncreaseBulletCount adds projectiles to each volley.
func (c *Combat) IncreaseBulletCount(amount int) {
	c.BulletCount += amount
}
