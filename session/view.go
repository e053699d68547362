package session

import (
	"sort"

	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
)

// Kind identifies what a View shows. The order is the draw order.
type Kind int

const (
	KindWall Kind = iota
	KindDoor
	KindKey
	KindHealthPack
	KindBonus
	KindEnemy
	KindBullet
	KindWave
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindKey:
		return "key"
	case KindHealthPack:
		return "health_pack"
	case KindBonus:
		return "bonus"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindWave:
		return "wave"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// View is a read-only snapshot of one live entity. Fields that do not apply
// to the kind are zero.
type View struct {
	Entity ecs.Entity
	Kind   Kind
	Rect   common.Rect

	Health    int
	MaxHealth int

	Facing component.Facing
	Frame  int

	Surface   component.Surface
	EnemyKind component.EnemyKind
	Scale     float64
}

// HUD summarises the attempt for the status bar.
type HUD struct {
	Health     int
	MaxHealth  int
	Score      int
	WavesLeft  int
	WaveBudget int
	Level      int
	LevelCount int
	HasKey     bool
}

// Views lists every drawable entity in draw order.
func (s *Session) Views() []View {
	w := s.world
	var views []View
	for _, e := range ecs.Entities(w) {
		v, ok := viewOf(w, e)
		if ok {
			views = append(views, v)
		}
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Kind < views[j].Kind })
	return views
}

func viewOf(w *ecs.World, e ecs.Entity) (View, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return View{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return View{}, false
	}
	v := View{Entity: e, Rect: common.NewRect(t.X, t.Y, c.Width, c.Height)}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		v.Health, v.MaxHealth = h.Current, h.Max
	}

	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		v.Kind = KindPlayer
		v.Facing = p.Facing
		v.Frame = int(p.Frame)
		return v, true
	}
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		v.Kind = KindEnemy
		v.EnemyKind = enemy.Kind
		return v, true
	}
	if wave, ok := ecs.Get(w, e, component.WaveComponent.Kind()); ok {
		v.Kind = KindWave
		v.Scale = wave.Scale
		return v, true
	}
	if ecs.Has(w, e, component.BulletComponent.Kind()) {
		v.Kind = KindBullet
		return v, true
	}
	if wall, ok := ecs.Get(w, e, component.WallComponent.Kind()); ok {
		v.Kind = KindWall
		v.Surface = wall.Surface
		return v, true
	}
	if ecs.Has(w, e, component.DoorTagComponent.Kind()) {
		v.Kind = KindDoor
		return v, true
	}
	if pickup, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok {
		switch pickup.Kind {
		case component.PickupKey:
			v.Kind = KindKey
		case component.PickupHealth:
			v.Kind = KindHealthPack
		default:
			v.Kind = KindBonus
		}
		return v, true
	}
	return View{}, false
}

// HUD returns the status bar values.
func (s *Session) HUD() HUD {
	w := s.world
	hud := HUD{Level: s.current, LevelCount: s.LevelCount()}
	if h, ok := ecs.Get(w, s.player, component.HealthComponent.Kind()); ok {
		hud.Health, hud.MaxHealth = h.Current, h.Max
	}
	if p, ok := ecs.Get(w, s.player, component.PlayerComponent.Kind()); ok {
		hud.Score = p.Score
	}
	if e, ok := ecs.First(w, component.LevelStateComponent.Kind()); ok {
		if state, ok := ecs.Get(w, e, component.LevelStateComponent.Kind()); ok {
			hud.HasKey = state.HasKey
		}
		if budget, ok := ecs.Get(w, e, component.WaveBudgetComponent.Kind()); ok {
			hud.WavesLeft = budget.Remaining()
			hud.WaveBudget = budget.Max
		}
	}
	return hud
}
