package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type DoorTag struct{}

var DoorTagComponent = NewComponent[DoorTag]()
