package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// boxOf returns the world-space footprint of e.
func boxOf(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return common.NewRect(t.X, t.Y, c.Width, c.Height), true
}

type wallHit struct {
	entity  ecs.Entity
	surface component.Surface
	box     common.Rect
}

// overlappingWalls lists every wall whose box strictly overlaps box.
func overlappingWalls(w *ecs.World, box common.Rect) []wallHit {
	var hits []wallHit
	ecs.ForEach(w, component.WallComponent.Kind(), func(e ecs.Entity, wall *component.Wall) {
		wb, ok := boxOf(w, e)
		if !ok || !box.Intersects(wb) {
			return
		}
		hits = append(hits, wallHit{entity: e, surface: wall.Surface, box: wb})
	})
	return hits
}

func touchesWall(w *ecs.World, box common.Rect) bool {
	found := false
	ecs.ForEach(w, component.WallComponent.Kind(), func(e ecs.Entity, _ *component.Wall) {
		if found {
			return
		}
		if wb, ok := boxOf(w, e); ok && box.Intersects(wb) {
			found = true
		}
	})
	return found
}

// reflectAxes reports which velocity components a wall overlap flips. An
// edge counts as hit when the facing edges are closer than threshold.
func reflectAxes(box, wall common.Rect, threshold float64) (flipX, flipY bool) {
	flipX = math.Abs(box.Right()-wall.X) < threshold || math.Abs(box.X-wall.Right()) < threshold
	flipY = math.Abs(box.Bottom()-wall.Y) < threshold || math.Abs(box.Y-wall.Bottom()) < threshold
	return flipX, flipY
}

// reflect bounces vel off every wall in hits. Each axis flips at most once a
// tick, so a projectile touching two tiles of the same wall face still turns
// around.
func reflect(vel cp.Vector, box common.Rect, hits []wallHit, threshold float64) cp.Vector {
	var flipX, flipY bool
	for _, hit := range hits {
		fx, fy := reflectAxes(box, hit.box, threshold)
		flipX = flipX || fx
		flipY = flipY || fy
	}
	if flipX {
		vel.X = -vel.X
	}
	if flipY {
		vel.Y = -vel.Y
	}
	return vel
}

// playfield returns the bounds of the loaded level.
func playfield(w *ecs.World, spec *prefabs.GameSpec) (float64, float64) {
	if e, ok := ecs.First(w, component.LevelStateComponent.Kind()); ok {
		if state, ok := ecs.Get(w, e, component.LevelStateComponent.Kind()); ok && state.Width > 0 && state.Height > 0 {
			return state.Width, state.Height
		}
	}
	return spec.Playfield.Width, spec.Playfield.Height
}

func levelState(w *ecs.World) (ecs.Entity, *component.LevelState, bool) {
	e, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	state, ok := ecs.Get(w, e, component.LevelStateComponent.Kind())
	return e, state, ok
}

func emit(w *ecs.World, kind ecs.EventKind, e ecs.Entity, box common.Rect, value int) {
	c := box.Center()
	w.Events().Push(ecs.Event{Kind: kind, Entity: e, X: c.X, Y: c.Y, Value: value})
}
