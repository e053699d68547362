package component

// Persistent marks an entity that survives a world reload. Everything else is
// rebuilt from the level grid.
type Persistent struct {
	ID            string
	KeepOnAdvance bool
	KeepOnRestart bool
}

var PersistentComponent = NewComponent[Persistent]()
