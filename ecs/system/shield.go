package system

import (
	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
)

// ShieldSystem counts fire truck shields down by one tick and announces when
// a shield runs out.
type ShieldSystem struct {
	dt float64
}

// NewShieldSystem builds a shield countdown for a game running at tickRate
// updates per second.
func NewShieldSystem(tickRate int) *ShieldSystem {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &ShieldSystem{dt: 1 / float64(tickRate)}
}

func (s *ShieldSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	ecs.ForEach(w, component.FireTruckComponent.Kind(), func(e ecs.Entity, truck *component.FireTruck) {
		if truck.ShieldSeconds <= 0 {
			return
		}
		truck.ShieldSeconds -= s.dt
		if truck.ShieldSeconds > 0 {
			return
		}
		truck.ShieldSeconds = 0
		w.Events().Push(ecs.Event{Type: ecs.EventShieldExpired, Data: e})
	})
	return nil
}
