package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/echoknight/common"
	"github.com/milk9111/echoknight/ecs"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/ecs/entity"
	"github.com/milk9111/echoknight/ecs/system"
	"github.com/milk9111/echoknight/levels"
	"github.com/milk9111/echoknight/prefabs"
)

var (
	ErrLevelOutOfRange = errors.New("session: level index out of range")
	ErrLevelLocked     = errors.New("session: level locked")
)

// ProgressStore persists the highest level reached.
type ProgressStore interface {
	Level() int
	Record(level int) error
	Flush() error
}

// StepResult is what one tick produced.
type StepResult struct {
	Events    []ecs.Event
	Restarted bool
	Advanced  bool
	Won       bool
}

// Session owns the world for one run of the campaign: it drives the
// simulation tick and performs restarts and level changes between ticks.
type Session struct {
	spec     *prefabs.GameSpec
	pending  *prefabs.GameSpec
	campaign *levels.Campaign
	store    ProgressStore
	rng      common.Rand

	world  *ecs.World
	core   *ecs.Scheduler
	player ecs.Entity

	current int
	loaded  bool
	won     bool
}

// New creates a session with the player in place but no level loaded.
func New(spec *prefabs.GameSpec, campaign *levels.Campaign, store ProgressStore, rng common.Rand) (*Session, error) {
	if spec == nil {
		return nil, errors.New("session: nil game spec")
	}
	if campaign.Len() == 0 {
		return nil, levels.ErrNoLevels
	}
	if rng == nil {
		rng = common.NewRand(0)
	}

	s := &Session{
		spec:     spec,
		campaign: campaign,
		store:    store,
		rng:      rng,
		world:    ecs.NewWorld(),
	}
	s.core = system.NewCore(spec, rng, system.LoadFirePattern(spec.Enemy.FireScript))

	player, err := entity.NewPlayer(s.world, spec)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.player = player
	return s, nil
}

// Load starts a fresh attempt at index. Only unlocked levels may be loaded.
func (s *Session) Load(index int) error {
	if index < 0 || index >= s.LevelCount() {
		return fmt.Errorf("%w: %d", ErrLevelOutOfRange, index)
	}
	if index > s.Unlocked() {
		return fmt.Errorf("%w: %d > %d", ErrLevelLocked, index, s.Unlocked())
	}
	s.won = false
	return s.load(index, system.PersistenceOnRestart)
}

// RestartAttempt reloads the current level. Score and progress are kept.
func (s *Session) RestartAttempt() error {
	return s.restart("requested")
}

func (s *Session) restart(reason string) error {
	if err := s.load(s.current, system.PersistenceOnRestart); err != nil {
		return err
	}
	s.world.Events().Push(ecs.Event{Kind: ecs.EventLevelRestarted, Value: s.current})
	log.Printf("session: restarted level %d: %s", s.current+1, reason)
	return nil
}

// Advance moves to the next level and records it as reached. Past the last
// level the session is won and nothing is reloaded.
func (s *Session) Advance() (bool, error) {
	return s.advanceTo(s.current + 1)
}

// advanceTo loads next. Any index past the last level ends the campaign.
func (s *Session) advanceTo(next int) (bool, error) {
	if next < 0 {
		return false, fmt.Errorf("%w: %d", ErrLevelOutOfRange, next)
	}
	if next >= s.LevelCount() {
		s.won = true
		s.world.Events().Push(ecs.Event{Kind: ecs.EventGameWon, Value: s.current})
		log.Printf("session: campaign complete")
		return true, nil
	}

	if s.store != nil {
		// A failed write has already degraded the store to memory.
		_ = s.store.Record(next)
	}
	if err := s.load(next, system.PersistenceOnAdvance); err != nil {
		return false, err
	}
	s.world.Events().Push(ecs.Event{Kind: ecs.EventLevelAdvanced, Value: next})
	log.Printf("session: advanced to level %d", next+1)
	return false, nil
}

func (s *Session) load(index int, mode system.PersistenceMode) error {
	layout, err := s.campaign.Layout(index)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if s.pending != nil {
		s.spec = s.pending
		s.pending = nil
		s.core = system.NewCore(s.spec, s.rng, system.LoadFirePattern(s.spec.Enemy.FireScript))
	}

	kept := system.PruneForReload(s.world, mode)
	player, ok := kept[entity.PlayerPersistentID]
	if !ok {
		if player, err = entity.NewPlayer(s.world, s.spec); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	s.player = player

	spawnX, spawnY := s.spawn()
	if err := entity.LoadLevelToWorld(s.world, layout, index, spawnX, spawnY, s.spec, s.rng); err != nil {
		return fmt.Errorf("session: load level %d: %w", index, err)
	}
	if err := entity.PlacePlayer(s.world, s.player, s.spec, spawnX, spawnY); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.current = index
	s.loaded = true
	return nil
}

func (s *Session) spawn() (float64, float64) {
	if p := s.campaign.Spawn; p.X != 0 || p.Y != 0 {
		return p.X, p.Y
	}
	return s.spec.Player.SpawnX, s.spec.Player.SpawnY
}

// Step runs one tick with the given intent, then applies any restart or
// level change the tick requested.
func (s *Session) Step(in component.Input) StepResult {
	if s.won || !s.loaded {
		return StepResult{Won: s.won}
	}

	if err := ecs.Add(s.world, s.player, component.InputComponent.Kind(), &in); err != nil {
		log.Printf("session: set input: %v", err)
	}
	s.core.Update(s.world)

	var res StepResult
	if stateEntity, ok := ecs.First(s.world, component.LevelStateComponent.Kind()); ok {
		restart, restarting := ecs.Get(s.world, stateEntity, component.RestartRequestComponent.Kind())
		change, changing := ecs.Get(s.world, stateEntity, component.LevelChangeRequestComponent.Kind())
		switch {
		case restarting:
			if err := s.restart(restart.Reason); err != nil {
				log.Printf("session: restart: %v", err)
			}
			res.Restarted = true
		case changing:
			won, err := s.advanceTo(change.To)
			if err != nil {
				log.Printf("session: advance: %v", err)
			}
			res.Advanced = err == nil && !won
			res.Won = won
		}
	}

	res.Events = s.world.Events().Drain()
	return res
}

// ApplySpec swaps the tuning. It takes effect at the next level load so a
// running attempt never changes under the player.
func (s *Session) ApplySpec(spec *prefabs.GameSpec) {
	if spec == nil {
		return
	}
	s.pending = spec
}

// Close flushes progress.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Flush()
}

func (s *Session) CurrentLevel() int { return s.current }

func (s *Session) LevelCount() int { return s.campaign.Len() }

func (s *Session) Won() bool { return s.won }

func (s *Session) Spec() *prefabs.GameSpec { return s.spec }

// Unlocked returns the highest selectable level index.
func (s *Session) Unlocked() int {
	if s.store == nil {
		return 0
	}
	return common.ClampInt(s.store.Level(), 0, s.LevelCount()-1)
}

// World exposes the simulation state for inspection.
func (s *Session) World() *ecs.World { return s.world }
