package system

import (
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
)

// TransitionSystem turns terminal conditions into requests. Death wins over
// reaching the door in the same tick. The session consumes the requests once
// the tick is over.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem { return &TransitionSystem{} }

func (s *TransitionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	stateEntity, state, ok := levelState(w)
	if !ok {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && health.Current <= 0 {
		_ = ecs.Add(w, stateEntity, component.RestartRequestComponent.Kind(), &component.RestartRequest{Reason: "player died"})
		return
	}

	if !state.HasKey {
		return
	}
	playerBox, ok := boxOf(w, player)
	if !ok {
		return
	}
	reached := false
	ecs.ForEach(w, component.DoorTagComponent.Kind(), func(e ecs.Entity, _ *component.DoorTag) {
		if box, ok := boxOf(w, e); ok && playerBox.Intersects(box) {
			reached = true
		}
	})
	if reached {
		_ = ecs.Add(w, stateEntity, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{
			From: state.Index,
			To:   state.Index + 1,
		})
	}
}
