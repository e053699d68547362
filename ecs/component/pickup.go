package component

type PickupKind int

const (
	PickupKey PickupKind = iota
	PickupHealth
	PickupBonus
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health_pack"
	case PickupBonus:
		return "bonus"
	default:
		return "key"
	}
}

// Pickup is consumed on player contact. Amount is the heal or score value;
// keys ignore it.
type Pickup struct {
	Kind   PickupKind
	Amount int
}

var PickupComponent = NewComponent[Pickup]()
