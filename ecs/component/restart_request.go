package component

// RestartRequest asks the session to reload the current level attempt.
type RestartRequest struct {
	Reason string
}

var RestartRequestComponent = NewComponent[RestartRequest]()
