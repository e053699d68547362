package component

// LevelState is the per-attempt singleton describing the loaded level.
type LevelState struct {
	Index  int
	HasKey bool

	SpawnX float64
	SpawnY float64

	// Width and Height are the playfield bounds used by enemy patrols and
	// bullet expiry.
	Width  float64
	Height float64
}

var LevelStateComponent = NewComponent[LevelState]()
