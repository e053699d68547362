package component

// Facing is the direction the player last moved in; it selects the walk
// animation row.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Player holds the avatar's movement and scoring state.
type Player struct {
	Speed  float64
	Score  int
	Facing Facing
	// Frame is the fractional animation frame; the shell truncates it.
	Frame      float64
	FrameSpeed float64
	FrameCount int
}

var PlayerComponent = NewComponent[Player]()
