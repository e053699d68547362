package component

// Input is the intent snapshot handed to the simulation every tick. Fire and
// Pause are edge-triggered: the shell sets them only on the tick the key went
// down.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
	Pause bool

	// CursorX and CursorY are the pointer position in world units, used to
	// aim waves.
	CursorX float64
	CursorY float64
}

var InputComponent = NewComponent[Input]()
