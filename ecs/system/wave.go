package system

import (
	"math"

	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// WaveSystem moves and grows waves, then resolves them against walls and
// enemies.
type WaveSystem struct {
	spec *prefabs.GameSpec
}

func NewWaveSystem(spec *prefabs.GameSpec) *WaveSystem {
	return &WaveSystem{spec: spec}
}

func (s *WaveSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}

	ecs.ForEach3(w, component.WaveComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, wave *component.Wave, t *component.Transform, v *component.Velocity) {
		c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}

		t.X += v.X
		t.Y += v.Y
		wave.AgeTicks++
		wave.Scale = s.scaleAt(wave.AgeTicks)

		size := wave.BaseSize * wave.Scale
		box := common.NewRect(t.X, t.Y, c.Width, c.Height).Resized(size, size)
		t.X, t.Y = box.X, box.Y
		c.Width, c.Height = box.Width, box.Height

		hits := overlappingWalls(w, box)
		for _, hit := range hits {
			if hit.surface == component.SurfaceAbsorbing {
				emit(w, ecs.EventWaveAbsorbed, e, box, 0)
				ecs.DestroyEntity(w, e)
				return
			}
		}
		if len(hits) > 0 {
			v.Vector = reflect(v.Vector, box, hits, s.spec.Wave.ReflectThreshold)
			for _, hit := range hits {
				if hit.surface == component.SurfaceAmplifying {
					v.Vector = v.Vector.Mult(s.spec.Wave.Amplify)
					emit(w, ecs.EventWaveAmplified, e, box, 0)
					break
				}
			}
		}

		if target, ok := firstEnemyIn(w, box); ok {
			ecs.DestroyEntity(w, e)
			damageEnemy(w, target, 1, s.spec.Enemy.KillScore)
		}
	})
}

// scaleAt grows linearly from 1 to MaxScale over the growth window, then
// holds.
func (s *WaveSystem) scaleAt(ticks int) float64 {
	growth := s.spec.Wave.GrowthMS
	if growth <= 0 {
		return s.spec.Wave.MaxScale
	}
	progress := math.Min(s.spec.MS(ticks), growth) / growth
	return common.Lerp(1, s.spec.Wave.MaxScale, progress)
}

func firstEnemyIn(w *ecs.World, box common.Rect) (ecs.Entity, bool) {
	var (
		target ecs.Entity
		found  bool
	)
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy) {
		if found {
			return
		}
		if eb, ok := boxOf(w, e); ok && box.Intersects(eb) {
			target, found = e, true
		}
	})
	return target, found
}
