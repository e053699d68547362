package component

// LevelChangeRequest is a one-shot request emitted when the player reaches the
// door while holding the key. The session owns the actual reload.
type LevelChangeRequest struct {
	From int
	To   int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
