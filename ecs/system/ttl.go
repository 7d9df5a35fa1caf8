package system

import (
	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
)

// TTLSystem decrements frame-based TTL components and destroys entities when
// the TTL reaches zero.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames > 0 {
			ttl.Frames--
			if ttl.Frames > 0 {
				return
			}
		}

		w.Events().Push(ecs.Event{Type: ecs.EventDespawn, Data: ttl.Reason})
		ecs.DestroyEntity(w, e)
	})
	return nil
}
