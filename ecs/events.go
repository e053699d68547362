package ecs

// EventKind identifies simulation events surfaced to the shell.
type EventKind string

const (
	EventWaveFired       EventKind = "wave_fired"
	EventWaveAbsorbed    EventKind = "wave_absorbed"
	EventWaveAmplified   EventKind = "wave_amplified"
	EventEnemyHit        EventKind = "enemy_hit"
	EventEnemyKilled     EventKind = "enemy_killed"
	EventBulletFired     EventKind = "bullet_fired"
	EventPlayerHurt      EventKind = "player_hurt"
	EventPickupCollected EventKind = "pickup_collected"
	EventKeyCollected    EventKind = "key_collected"
	EventLevelRestarted  EventKind = "level_restarted"
	EventLevelAdvanced   EventKind = "level_advanced"
	EventGameWon         EventKind = "game_won"
)

// Event is emitted by systems during a tick. Entity may already be destroyed
// by the time the event is read.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   float64
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
