package system

import (
	"log/slog"

	"github.com/milk9111/kroy/ecs"
)

// EventLogSystem runs last in the tick, logs the tick's events and keeps
// running pickup totals per variant tag.
type EventLogSystem struct {
	logger  *slog.Logger
	pickups map[string]int
}

func NewEventLogSystem(logger *slog.Logger) *EventLogSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogSystem{logger: logger, pickups: map[string]int{}}
}

func (s *EventLogSystem) Update(w *ecs.World) error {
	for _, evt := range w.Events().Pending() {
		if evt.Type == ecs.EventPickup {
			if p, ok := evt.Data.(ecs.PickupEvent); ok {
				s.pickups[p.Tag]++
			}
		}
		s.logger.Debug("event", "type", evt.Type, "data", evt.Data)
	}
	return nil
}

// Pickups returns how many power-ups of each tag were collected so far.
func (s *EventLogSystem) Pickups() map[string]int {
	out := make(map[string]int, len(s.pickups))
	for k, v := range s.pickups {
		out[k] = v
	}
	return out
}
