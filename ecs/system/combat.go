package system

import (
	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
)

// damageEnemy is the only place enemies die and the only place a kill is
// scored.
func damageEnemy(w *ecs.World, e ecs.Entity, amount, killScore int) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	box, _ := boxOf(w, e)

	health.Current = common.ClampInt(health.Current-amount, 0, health.Max)
	emit(w, ecs.EventEnemyHit, e, box, health.Current)
	if health.Current > 0 {
		return false
	}

	ecs.DestroyEntity(w, e)
	awardScore(w, killScore)
	emit(w, ecs.EventEnemyKilled, e, box, killScore)
	return true
}

func awardScore(w *ecs.World, amount int) {
	if amount <= 0 {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		p.Score += amount
	}
}

// hurtPlayer subtracts amount from the player's health, clamped at zero.
func hurtPlayer(w *ecs.World, player ecs.Entity, amount int) {
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || amount <= 0 {
		return
	}
	health.Current = common.ClampInt(health.Current-amount, 0, health.Max)
	box, _ := boxOf(w, player)
	emit(w, ecs.EventPlayerHurt, player, box, health.Current)
}

func healPlayer(w *ecs.World, player ecs.Entity, amount int) {
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}
	health.Current = common.ClampInt(health.Current+amount, 0, health.Max)
}
