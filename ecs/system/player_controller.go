package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/ecs/entity"
	"github.com/milk9111/echoknight/prefabs"
)

// PlayerControllerSystem applies the tick's input: it fires a wave toward the
// cursor, then moves the player one step in a single direction.
type PlayerControllerSystem struct {
	spec *prefabs.GameSpec
}

func NewPlayerControllerSystem(spec *prefabs.GameSpec) *PlayerControllerSystem {
	return &PlayerControllerSystem{spec: spec}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	if input.Fire {
		s.fire(w, player, input)
	}
	s.move(w, player, input)
}

func (s *PlayerControllerSystem) fire(w *ecs.World, player ecs.Entity, input *component.Input) {
	stateEntity, ok := ecs.First(w, component.WaveBudgetComponent.Kind())
	if !ok {
		return
	}
	budget, _ := ecs.Get(w, stateEntity, component.WaveBudgetComponent.Kind())
	if budget.Remaining() == 0 {
		return
	}

	box, ok := boxOf(w, player)
	if !ok {
		return
	}
	center := box.Center()
	vel, ok := common.Direction(center, cp.Vector{X: input.CursorX, Y: input.CursorY}, s.spec.Wave.Speed)
	if !ok {
		// Cursor on the player's center: no direction to fire in.
		return
	}

	wave, err := entity.SpawnWave(w, s.spec, center, vel)
	if err != nil {
		return
	}
	budget.Used++
	wb, _ := boxOf(w, wave)
	emit(w, ecs.EventWaveFired, wave, wb, budget.Remaining())
}

func (s *PlayerControllerSystem) move(w *ecs.World, player ecs.Entity, input *component.Input) {
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	var step cp.Vector
	switch {
	case input.Left:
		step.X = -p.Speed
		p.Facing = component.FacingLeft
	case input.Right:
		step.X = p.Speed
		p.Facing = component.FacingRight
	case input.Up:
		step.Y = -p.Speed
		p.Facing = component.FacingUp
	case input.Down:
		step.Y = p.Speed
		p.Facing = component.FacingDown
	default:
		p.Frame = 0
		return
	}

	box, ok := boxOf(w, player)
	if !ok {
		return
	}
	width, height := playfield(w, s.spec)
	next := box.Translate(step)
	next.X = common.Clamp(next.X, 0, math.Max(0, width-next.Width))
	next.Y = common.Clamp(next.Y, 0, math.Max(0, height-next.Height))
	if !touchesWall(w, next) {
		t.X, t.Y = next.X, next.Y
	}

	if p.FrameCount > 0 {
		p.Frame += p.FrameSpeed
		if p.Frame >= float64(p.FrameCount) {
			p.Frame = 0
		}
	}
}
