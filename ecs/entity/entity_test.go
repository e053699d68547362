package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/levels"
	"github.com/milk9111/echoknight/prefabs"
)

type fixedRand struct{ n int }

func (r fixedRand) Intn(n int) int { return r.n % n }

func loadSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	return spec
}

func TestLoadLevelToWorld(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	layout := levels.Parse([]string{
		"WWWWW",
		"WHKAW",
		"WEDBW",
		"WXPXW",
	}, 50)

	if err := LoadLevelToWorld(w, layout, 2, 100, 100, spec, fixedRand{}); err != nil {
		t.Fatalf("load level: %v", err)
	}

	surfaces := map[component.Surface]int{}
	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		surfaces[wall.Surface]++
	})
	if surfaces[component.SurfaceNormal] != 11 || surfaces[component.SurfaceAmplifying] != 1 || surfaces[component.SurfaceAbsorbing] != 1 {
		t.Fatalf("wall surfaces = %v", surfaces)
	}

	kinds := map[component.EnemyKind]int{}
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		kinds[enemy.Kind]++
		h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		want := spec.Enemy.WeakHealth
		if enemy.Kind == component.EnemyStrong {
			want = spec.Enemy.StrongHealth
		}
		if h.Current != want {
			t.Fatalf("%v enemy health = %d, want %d", enemy.Kind, h.Current, want)
		}
	})
	if kinds[component.EnemyWeak] != 1 || kinds[component.EnemyStrong] != 1 {
		t.Fatalf("enemy kinds = %v", kinds)
	}

	pickups := map[component.PickupKind]int{}
	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		pickups[p.Kind]++
	})
	if pickups[component.PickupKey] != 1 || pickups[component.PickupHealth] != 1 || pickups[component.PickupBonus] != 2 {
		t.Fatalf("pickups = %v", pickups)
	}
	if n := ecs.Count(w, component.DoorTagComponent.Kind()); n != 1 {
		t.Fatalf("doors = %d, want 1", n)
	}

	stateEntity, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		t.Fatalf("missing level state")
	}
	state, _ := ecs.Get(w, stateEntity, component.LevelStateComponent.Kind())
	if state.Index != 2 || state.HasKey || state.Width != spec.Playfield.Width {
		t.Fatalf("level state = %+v", *state)
	}
	budget, _ := ecs.Get(w, stateEntity, component.WaveBudgetComponent.Kind())
	if budget.Remaining() != spec.Wave.Budget {
		t.Fatalf("wave budget remaining = %d, want %d", budget.Remaining(), spec.Wave.Budget)
	}
}

func TestDoorPosition(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	layout := levels.Parse([]string{"", "  D"}, 50)
	if err := LoadLevelToWorld(w, layout, 0, 100, 100, spec, fixedRand{}); err != nil {
		t.Fatalf("load level: %v", err)
	}
	door, ok := ecs.First(w, component.DoorTagComponent.Kind())
	if !ok {
		t.Fatalf("missing door")
	}
	tr, _ := ecs.Get(w, door, component.TransformComponent.Kind())
	if tr.X != 100 || tr.Y != 50 {
		t.Fatalf("door at (%v,%v), want (100,50)", tr.X, tr.Y)
	}
}

func TestNewEnemyPatrolSpeed(t *testing.T) {
	spec := loadSpec(t)
	tests := []struct {
		roll int
		want float64
	}{
		{roll: 0, want: -1},
		{roll: 1, want: 2},
		{roll: 2, want: -3},
	}
	for _, tc := range tests {
		w := ecs.NewWorld()
		e, err := NewEnemy(w, spec, component.EnemyWeak, 0, 0, 50, fixedRand{n: tc.roll})
		if err != nil {
			t.Fatalf("new enemy: %v", err)
		}
		v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		if v.X != tc.want || v.Y != 0 {
			t.Fatalf("roll %d: velocity = %v, want (%v,0)", tc.roll, v.Vector, tc.want)
		}
	}
}

func TestPlacePlayerKeepsScore(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	player, err := NewPlayer(w, spec)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	p.Score = 70
	h, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	h.Current = 3

	if err := PlacePlayer(w, player, spec, 100, 100); err != nil {
		t.Fatalf("place player: %v", err)
	}

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 100 || tr.Y != 100 {
		t.Fatalf("position = (%v,%v)", tr.X, tr.Y)
	}
	if h.Current != spec.Player.MaxHealth {
		t.Fatalf("health = %d, want %d", h.Current, spec.Player.MaxHealth)
	}
	if p.Score != 70 {
		t.Fatalf("score = %d, want 70", p.Score)
	}
}

func TestSpawnRejectsZeroVelocity(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	if _, err := SpawnBullet(w, spec, cp.Vector{X: 500, Y: 250}, cp.Vector{}); err == nil {
		t.Fatalf("expected error for zero velocity")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("entities = %d, want 0", n)
	}
}
