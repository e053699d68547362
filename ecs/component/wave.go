package component

// Wave is a player-fired sound wave. Its box grows from BaseSize to
// BaseSize*MaxScale over the growth window, recentered every tick.
type Wave struct {
	BaseSize float64
	Scale    float64
	AgeTicks int
}

var WaveComponent = NewComponent[Wave]()
