package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// NewEnemy places an enemy on a tile. Its patrol speed is a random integer
// from the configured range with a random sign.
func NewEnemy(w *ecs.World, spec *prefabs.GameSpec, kind component.EnemyKind, x, y, size float64, rng common.Rand) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{Kind: kind}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}

	hp := spec.Enemy.WeakHealth
	if kind == component.EnemyStrong {
		hp = spec.Enemy.StrongHealth
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: hp, Max: hp}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{Width: size, Height: size}); err != nil {
		return 0, fmt.Errorf("enemy: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{
		Vector: cp.Vector{X: patrolSpeed(spec, rng)},
	}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}

	return entity, nil
}

func patrolSpeed(spec *prefabs.GameSpec, rng common.Rand) float64 {
	lo, hi := spec.Enemy.MinSpeed, spec.Enemy.MaxSpeed
	speed := lo
	if rng != nil && hi > lo {
		speed = lo + rng.Intn(hi-lo+1)
	}
	if rng != nil && rng.Intn(2) == 0 {
		return -float64(speed)
	}
	return float64(speed)
}
