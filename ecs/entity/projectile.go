package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// SpawnWave creates a wave centered on center. Its box starts at the base
// size and is grown by the wave system.
func SpawnWave(w *ecs.World, spec *prefabs.GameSpec, center, velocity cp.Vector) (ecs.Entity, error) {
	size := spec.Wave.BaseSize
	return spawnProjectile(w, "wave", center, velocity, size, func(e ecs.Entity) error {
		return ecs.Add(w, e, component.WaveComponent.Kind(), &component.Wave{BaseSize: size, Scale: 1})
	})
}

// SpawnBullet creates an enemy bullet centered on center.
func SpawnBullet(w *ecs.World, spec *prefabs.GameSpec, center, velocity cp.Vector) (ecs.Entity, error) {
	return spawnProjectile(w, "bullet", center, velocity, spec.Bullet.Size, func(e ecs.Entity) error {
		return ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Damage: spec.Bullet.Damage})
	})
}

func spawnProjectile(w *ecs.World, name string, center, velocity cp.Vector, size float64, tag func(ecs.Entity) error) (ecs.Entity, error) {
	if velocity.X == 0 && velocity.Y == 0 {
		return 0, fmt.Errorf("%s: zero velocity", name)
	}

	entity := ecs.CreateEntity(w)
	box := common.RectAround(center, size, size)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: box.X, Y: box.Y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{Width: size, Height: size}); err != nil {
		return 0, fmt.Errorf("%s: add collider: %w", name, err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{Vector: velocity}); err != nil {
		return 0, fmt.Errorf("%s: add velocity: %w", name, err)
	}
	if err := tag(entity); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("%s: add tag: %w", name, err)
	}
	return entity, nil
}
