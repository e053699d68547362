package component

// Collider is the size of an entity's axis-aligned box. Together with
// Transform it gives the footprint used by every overlap test.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()
