package component

// Surface decides how a wall treats a wave that touches it. Bullets always
// bounce regardless of surface.
type Surface int

const (
	SurfaceNormal Surface = iota
	SurfaceAmplifying
	SurfaceAbsorbing
)

func (s Surface) String() string {
	switch s {
	case SurfaceAmplifying:
		return "amplifying"
	case SurfaceAbsorbing:
		return "absorbing"
	default:
		return "normal"
	}
}

// Wall is a static tile. Its surface is fixed at level load.
type Wall struct {
	Surface Surface
}

var WallComponent = NewComponent[Wall]()
