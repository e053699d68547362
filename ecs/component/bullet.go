package component

// Bullet is an enemy projectile. It expires once its age passes the
// configured time-to-live.
type Bullet struct {
	Damage   int
	AgeTicks int
}

var BulletComponent = NewComponent[Bullet]()
