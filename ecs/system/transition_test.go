package system

import (
	"testing"

	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/ecs/entity"
)

func TestTransitionRequests(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		hasKey      bool
		atDoor      bool
		wantRestart bool
		wantChange  bool
	}{
		{name: "door without key", health: 100, atDoor: true},
		{name: "key away from door", health: 100, hasKey: true},
		{name: "key at door", health: 100, hasKey: true, atDoor: true, wantChange: true},
		{name: "death", health: 0, wantRestart: true},
		{name: "death beats door", health: 0, hasKey: true, atDoor: true, wantRestart: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := testSpec()
			w := ecs.NewWorld()
			stateEntity, state := newLevelState(t, w, spec)
			state.Index = 3
			state.HasKey = tc.hasKey
			player := newPlayerAt(t, w, spec, 100, 100)
			h, _ := ecs.Get(w, player, component.HealthComponent.Kind())
			h.Current = tc.health
			doorX := 600.0
			if tc.atDoor {
				doorX = 120
			}
			if _, err := entity.NewDoor(w, doorX, 100, 50); err != nil {
				t.Fatalf("new door: %v", err)
			}

			NewTransitionSystem().Update(w)

			if got := ecs.Has(w, stateEntity, component.RestartRequestComponent.Kind()); got != tc.wantRestart {
				t.Fatalf("restart request = %v, want %v", got, tc.wantRestart)
			}
			req, got := ecs.Get(w, stateEntity, component.LevelChangeRequestComponent.Kind())
			if got != tc.wantChange {
				t.Fatalf("level change request = %v, want %v", got, tc.wantChange)
			}
			if got && (req.From != 3 || req.To != 4) {
				t.Fatalf("request = %+v, want 3 -> 4", *req)
			}
		})
	}
}
