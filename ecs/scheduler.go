package ecs

// Scheduler runs systems in a fixed order. The order is part of the
// simulation's contract: reordering changes outcomes.
type Scheduler struct {
	systems []System
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once against w.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	s.ticks++
}

// Ticks returns how many updates have run.
func (s *Scheduler) Ticks() uint64 {
	if s == nil {
		return 0
	}
	return s.ticks
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
