package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/ecs/entity"
	"github.com/milk9111/echoknight/prefabs"
)

type fixedRand struct{ n int }

func (r fixedRand) Intn(n int) int { return r.n % n }

func testSpec() *prefabs.GameSpec {
	return &prefabs.GameSpec{
		TickRate:  60,
		Playfield: prefabs.PlayfieldSpec{Width: 1000, Height: 500, TileSize: 50},
		Player: prefabs.PlayerSpec{
			Speed: 5, MaxHealth: 100, Width: 40, Height: 40,
			SpawnX: 100, SpawnY: 100, FrameSpeed: 0.2, FrameCount: 4,
		},
		Wave: prefabs.WaveSpec{
			Speed: 10, Budget: 5, BaseSize: 25, GrowthMS: 1000,
			MaxScale: 2, Amplify: 1.5, ReflectThreshold: 10,
		},
		Bullet: prefabs.BulletSpec{Speed: 5, Size: 12, TTLMS: 3000, Damage: 10},
		Enemy: prefabs.EnemySpec{
			WeakHealth: 1, StrongHealth: 3, MinSpeed: 1, MaxSpeed: 3,
			ShootIntervalMS: 1000, KillScore: 10, ContactDamage: 1,
		},
		Pickups: prefabs.PickupsSpec{Heal: 20, BonusScore: 50},
	}
}

func newPlayerAt(t *testing.T, w *ecs.World, spec *prefabs.GameSpec, x, y float64) ecs.Entity {
	t.Helper()
	player, err := entity.NewPlayer(w, spec)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if err := entity.PlacePlayer(w, player, spec, x, y); err != nil {
		t.Fatalf("place player: %v", err)
	}
	return player
}

func newLevelState(t *testing.T, w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, *component.LevelState) {
	t.Helper()
	e := ecs.CreateEntity(w)
	state := &component.LevelState{Width: spec.Playfield.Width, Height: spec.Playfield.Height}
	if err := ecs.Add(w, e, component.LevelStateComponent.Kind(), state); err != nil {
		t.Fatalf("add level state: %v", err)
	}
	if err := ecs.Add(w, e, component.WaveBudgetComponent.Kind(), &component.WaveBudget{Max: spec.Wave.Budget}); err != nil {
		t.Fatalf("add wave budget: %v", err)
	}
	return e, state
}

func velocityOf(t *testing.T, w *ecs.World, e ecs.Entity) cp.Vector {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v.Vector
}

func healthOf(t *testing.T, w *ecs.World, e ecs.Entity) int {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no health", e)
	}
	return h.Current
}

func scoreOf(t *testing.T, w *ecs.World, player ecs.Entity) int {
	t.Helper()
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("player component missing")
	}
	return p.Score
}

func hasEvent(events []ecs.Event, kind ecs.EventKind) bool {
	for _, evt := range events {
		if evt.Kind == kind {
			return true
		}
	}
	return false
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
