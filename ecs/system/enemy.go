package system

import (
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/ecs/entity"
	"github.com/milk9111/echoknight/prefabs"
)

// EnemySystem patrols enemies horizontally and fires their bullets.
type EnemySystem struct {
	spec    *prefabs.GameSpec
	rng     common.Rand
	pattern *FirePattern
}

func NewEnemySystem(spec *prefabs.GameSpec, rng common.Rand, pattern *FirePattern) *EnemySystem {
	return &EnemySystem{spec: spec, rng: rng, pattern: pattern}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil || s.spec == nil {
		return
	}
	width, _ := playfield(w, s.spec)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, v *component.Velocity) {
		c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return
		}

		t.X += v.X
		box := common.NewRect(t.X, t.Y, c.Width, c.Height)
		if box.X <= 0 || box.Right() >= width || touchesWall(w, box) {
			v.X = -v.X
		}

		enemy.ShootTicks++
		if s.spec.MS(enemy.ShootTicks) <= s.spec.Enemy.ShootIntervalMS {
			return
		}
		enemy.ShootTicks = 0

		roll := 0
		if s.rng != nil {
			roll = s.rng.Intn(len(diagonals))
		}
		vel := s.pattern.Velocity(roll, s.spec.Bullet.Speed)
		bullet, err := entity.SpawnBullet(w, s.spec, box.Center(), vel)
		if err != nil {
			return
		}
		emit(w, ecs.EventBulletFired, bullet, box, 0)
	})
}
