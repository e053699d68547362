package entity

import (
	"fmt"

	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/levels"
	"github.com/milk9111/echoknight/prefabs"
)

var surfaceByTile = map[levels.TileKind]component.Surface{
	levels.TileWall:           component.SurfaceNormal,
	levels.TileAmplifyingWall: component.SurfaceAmplifying,
	levels.TileAbsorbingWall:  component.SurfaceAbsorbing,
}

// LoadLevelToWorld creates every grid-defined entity of a level plus the
// per-attempt singletons (LevelState and WaveBudget). The player is not
// touched; callers reposition it with PlacePlayer.
func LoadLevelToWorld(w *ecs.World, layout levels.Layout, index int, spawnX, spawnY float64, spec *prefabs.GameSpec, rng common.Rand) error {
	tile := layout.TileSize
	if tile <= 0 {
		tile = spec.Playfield.TileSize
	}

	stateEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, stateEntity, component.LevelStateComponent.Kind(), &component.LevelState{
		Index:  index,
		SpawnX: spawnX,
		SpawnY: spawnY,
		Width:  spec.Playfield.Width,
		Height: spec.Playfield.Height,
	}); err != nil {
		return fmt.Errorf("level: add level state: %w", err)
	}
	if err := ecs.Add(w, stateEntity, component.WaveBudgetComponent.Kind(), &component.WaveBudget{
		Max: spec.Wave.Budget,
	}); err != nil {
		return fmt.Errorf("level: add wave budget: %w", err)
	}

	for _, t := range layout.Walls {
		if _, err := NewWall(w, surfaceByTile[t.Kind], t.X, t.Y, tile); err != nil {
			return err
		}
	}

	for _, t := range layout.Enemies {
		kind := component.EnemyWeak
		if t.Kind == levels.TileStrongEnemy {
			kind = component.EnemyStrong
		}
		if _, err := NewEnemy(w, spec, kind, t.X, t.Y, tile, rng); err != nil {
			return err
		}
	}

	if layout.Key != nil {
		if _, err := NewPickup(w, component.PickupKey, 0, layout.Key.X, layout.Key.Y, tile); err != nil {
			return err
		}
	}
	if layout.Door != nil {
		if _, err := NewDoor(w, layout.Door.X, layout.Door.Y, tile); err != nil {
			return err
		}
	}
	for _, t := range layout.HealthPacks {
		if _, err := NewPickup(w, component.PickupHealth, spec.Pickups.Heal, t.X, t.Y, tile); err != nil {
			return err
		}
	}
	for _, t := range layout.Bonuses {
		if _, err := NewPickup(w, component.PickupBonus, spec.Pickups.BonusScore, t.X, t.Y, tile); err != nil {
			return err
		}
	}

	return nil
}

func NewWall(w *ecs.World, surface component.Surface, x, y, size float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.WallComponent.Kind(), &component.Wall{Surface: surface}); err != nil {
		return 0, fmt.Errorf("wall: add wall: %w", err)
	}
	if err := addBox(w, entity, x, y, size); err != nil {
		return 0, fmt.Errorf("wall: %w", err)
	}
	return entity, nil
}

func NewPickup(w *ecs.World, kind component.PickupKind, amount int, x, y, size float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Amount: amount}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	if err := addBox(w, entity, x, y, size); err != nil {
		return 0, fmt.Errorf("pickup: %w", err)
	}
	return entity, nil
}

func NewDoor(w *ecs.World, x, y, size float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.DoorTagComponent.Kind(), &component.DoorTag{}); err != nil {
		return 0, fmt.Errorf("door: add tag: %w", err)
	}
	if err := addBox(w, entity, x, y, size); err != nil {
		return 0, fmt.Errorf("door: %w", err)
	}
	return entity, nil
}

func addBox(w *ecs.World, e ecs.Entity, x, y, size float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: size, Height: size}); err != nil {
		return fmt.Errorf("add collider: %w", err)
	}
	return nil
}
