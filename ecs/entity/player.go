package entity

import (
	"fmt"

	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/prefabs"
)

// PlayerPersistentID names the player across reloads.
const PlayerPersistentID = "player"

// NewPlayer creates the single player entity. It survives every reload; only
// its position and health are reset by PlacePlayer.
func NewPlayer(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Speed:      spec.Player.Speed,
		Facing:     component.FacingDown,
		FrameSpeed: spec.Player.FrameSpeed,
		FrameCount: spec.Player.FrameCount,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Player.MaxHealth,
		Max:     spec.Player.MaxHealth,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Player.SpawnX,
		Y: spec.Player.SpawnY,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Player.Width,
		Height: spec.Player.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.PersistentComponent.Kind(), &component.Persistent{
		ID:            PlayerPersistentID,
		KeepOnAdvance: true,
		KeepOnRestart: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add persistent: %w", err)
	}

	return entity, nil
}

// PlacePlayer moves the player to the spawn point and refills health. Score
// is left alone.
func PlacePlayer(w *ecs.World, player ecs.Entity, spec *prefabs.GameSpec, x, y float64) error {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.X, t.Y = x, y
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), t); err != nil {
		return fmt.Errorf("player: place: %w", err)
	}

	if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		health.Max = spec.Player.MaxHealth
		health.Current = health.Max
	}
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		p.Speed = spec.Player.Speed
		p.FrameSpeed = spec.Player.FrameSpeed
		p.FrameCount = spec.Player.FrameCount
		p.Facing = component.FacingDown
		p.Frame = 0
	}
	if c, ok := ecs.Get(w, player, component.ColliderComponent.Kind()); ok {
		c.Width, c.Height = spec.Player.Width, spec.Player.Height
	}
	if in, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		*in = component.Input{}
	}
	return nil
}
