package component

type EnemyKind int

const (
	EnemyWeak EnemyKind = iota
	EnemyStrong
)

func (k EnemyKind) String() string {
	if k == EnemyStrong {
		return "strong"
	}
	return "weak"
}

// Enemy patrols horizontally (its Velocity only has an X part) and fires a
// bullet whenever ShootTicks exceeds the configured interval.
type Enemy struct {
	Kind       EnemyKind
	ShootTicks int
}

var EnemyComponent = NewComponent[Enemy]()
