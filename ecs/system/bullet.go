package system

import (
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// BulletSystem moves enemy bullets, expires them, bounces them off walls and
// drops the ones that left the playfield.
type BulletSystem struct {
	spec *prefabs.GameSpec
}

func NewBulletSystem(spec *prefabs.GameSpec) *BulletSystem {
	return &BulletSystem{spec: spec}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}
	width, height := playfield(w, s.spec)

	ecs.ForEach3(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, b *component.Bullet, t *component.Transform, v *component.Velocity) {
		c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}

		t.X += v.X
		t.Y += v.Y
		b.AgeTicks++
		if s.spec.MS(b.AgeTicks) > s.spec.Bullet.TTLMS {
			ecs.DestroyEntity(w, e)
			return
		}

		box := common.NewRect(t.X, t.Y, c.Width, c.Height)
		if hits := overlappingWalls(w, box); len(hits) > 0 {
			v.Vector = reflect(v.Vector, box, hits, s.spec.Wave.ReflectThreshold)
		}

		if box.Outside(width, height) {
			ecs.DestroyEntity(w, e)
		}
	})
}
