package system

import (
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
)

type PersistenceMode int

const (
	PersistenceOnRestart PersistenceMode = iota
	PersistenceOnAdvance
)

func (m PersistenceMode) String() string {
	if m == PersistenceOnAdvance {
		return "advance"
	}
	return "restart"
}

// PruneForReload destroys every entity that does not survive a reload of the
// given mode and returns the survivors keyed by persistent id. When two
// entities share an id only the first one is kept.
func PruneForReload(w *ecs.World, mode PersistenceMode) map[string]ecs.Entity {
	kept := map[string]ecs.Entity{}
	if w == nil {
		return kept
	}

	for _, e := range ecs.Entities(w) {
		persistent, ok := ecs.Get(w, e, component.PersistentComponent.Kind())
		if !ok || persistent.ID == "" || !shouldKeep(persistent, mode) {
			ecs.DestroyEntity(w, e)
			continue
		}
		if _, exists := kept[persistent.ID]; exists {
			ecs.DestroyEntity(w, e)
			continue
		}
		kept[persistent.ID] = e
	}
	return kept
}

func shouldKeep(p *component.Persistent, mode PersistenceMode) bool {
	switch mode {
	case PersistenceOnAdvance:
		return p.KeepOnAdvance
	default:
		return p.KeepOnRestart
	}
}
