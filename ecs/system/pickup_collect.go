package system

import (
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
)

// PickupCollectSystem consumes every pickup the player overlaps.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
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

	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup) {
		box, ok := boxOf(w, e)
		if !ok || !playerBox.Intersects(box) {
			return
		}

		switch pickup.Kind {
		case component.PickupHealth:
			healPlayer(w, player, pickup.Amount)
			emit(w, ecs.EventPickupCollected, e, box, pickup.Amount)
		case component.PickupBonus:
			awardScore(w, pickup.Amount)
			emit(w, ecs.EventPickupCollected, e, box, pickup.Amount)
		case component.PickupKey:
			if _, state, ok := levelState(w); ok {
				state.HasKey = true
			}
			emit(w, ecs.EventKeyCollected, e, box, 0)
		}

		ecs.DestroyEntity(w, e)
	})
}
