package ecs

import "fmt"

// System advances one concern of the world by a single tick.
type System interface {
	Update(w *World) error
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order and stops at the first failure. Events
// pushed during the tick are dropped once all systems ran.
func (s *Scheduler) Update(w *World) error {
	for _, system := range s.systems {
		if err := system.Update(w); err != nil {
			return fmt.Errorf("ecs: %T: %w", system, err)
		}
	}
	w.Events().flush()
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
