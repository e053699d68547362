package system

import (
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/prefabs"
)

// NewCore returns the per-tick simulation in its fixed order: player, waves,
// bullets, enemies, pickups, hazards, terminal conditions.
func NewCore(spec *prefabs.GameSpec, rng common.Rand, pattern *FirePattern) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControllerSystem(spec),
		NewWaveSystem(spec),
		NewBulletSystem(spec),
		NewEnemySystem(spec, rng, pattern),
		NewPickupCollectSystem(),
		NewHazardSystem(spec),
		NewTransitionSystem(),
	)
}
