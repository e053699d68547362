package component

// Health is shared by the player and enemies. Current never exceeds Max and
// never drops below zero.
type Health struct {
	Current int
	Max     int
}

var HealthComponent = NewComponent[Health]()
