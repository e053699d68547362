package system

import (
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// HazardSystem applies bullet hits and enemy contact drain to the player.
type HazardSystem struct {
	spec *prefabs.GameSpec
}

func NewHazardSystem(spec *prefabs.GameSpec) *HazardSystem { return &HazardSystem{spec: spec} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerBox, ok := boxOf(w, player)
	if !ok {
		return
	}

	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, b *component.Bullet) {
		if box, ok := boxOf(w, e); ok && playerBox.Intersects(box) {
			hurtPlayer(w, player, b.Damage)
			ecs.DestroyEntity(w, e)
		}
	})

	// Contact drains a fixed amount per tick no matter how many enemies
	// overlap.
	touching := false
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy) {
		if touching {
			return
		}
		if box, ok := boxOf(w, e); ok && playerBox.Intersects(box) {
			touching = true
		}
	})
	if touching {
		hurtPlayer(w, player, s.spec.Enemy.ContactDamage)
	}
}
