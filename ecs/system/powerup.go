package system

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
	"github.com/milk9111/kroy/powerup"
)

// PowerUpSystem ticks every power-up against the player's fire truck and
// retires the ones that have been spent.
type PowerUpSystem struct {
	logger        *slog.Logger
	hook          *PickupHook
	despawnFrames int
}

func NewPowerUpSystem(logger *slog.Logger, hook *PickupHook, despawnFrames int) *PowerUpSystem {
	if logger == nil {
		logger = slog.Default()
	}
	if despawnFrames < 0 {
		despawnFrames = 0
	}
	return &PowerUpSystem{logger: logger, hook: hook, despawnFrames: despawnFrames}
}

// SetHook swaps the pickup hook, e.g. after the script was edited.
func (s *PowerUpSystem) SetHook(hook *PickupHook) {
	s.hook = hook
}

func (s *PowerUpSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	truck, ok := ecs.Get(w, player, component.FireTruckComponent.Kind())
	if !ok {
		return nil
	}
	target := &truckTarget{transform: transform, truck: truck}

	var err error
	ecs.ForEach(w, component.PowerUpComponent.Kind(), func(e ecs.Entity, pu *component.PowerUp) {
		if err != nil {
			return
		}
		if pu.State == nil {
			err = fmt.Errorf("system: entity %s: %w", e, powerup.ErrNoVariant)
			return
		}

		applied, uerr := pu.State.Update(target)
		if uerr != nil {
			err = fmt.Errorf("system: power-up %s: %w", pu.State.ID(), uerr)
			return
		}
		if applied {
			s.collected(w, e, pu.State)
		}
		if pu.State.Consumed() {
			_ = ecs.Remove(w, e, component.PowerUpComponent.Kind())
			_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: s.despawnFrames, Reason: "consumed"})
		}
	})
	return err
}

func (s *PowerUpSystem) collected(w *ecs.World, e ecs.Entity, p *powerup.PowerUp) {
	evt := ecs.PickupEvent{Entity: e, ID: p.ID(), Tag: powerup.Encode(p.Variant())}
	s.logger.Debug("power-up collected", "entity", e.String(), "id", evt.ID, "variant", evt.Tag)
	w.Events().Push(ecs.Event{Type: ecs.EventPickup, Data: evt})

	if s.hook == nil {
		return
	}
	if err := s.hook.Run(w, evt); err != nil {
		s.logger.Warn("pickup hook failed", "id", evt.ID, "error", err)
	}
}
