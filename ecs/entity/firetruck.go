package entity

import (
	"fmt"

	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
	"github.com/milk9111/kroy/prefabs"
)

// NewFireTruck spawns the player's truck with full water and health.
func NewFireTruck(w *ecs.World, spec prefabs.TruckSpec) (ecs.Entity, error) {
	return assemble(w,
		func(e ecs.Entity) error {
			if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
				return fmt.Errorf("fire truck: add player tag: %w", err)
			}
			return nil
		},
		func(e ecs.Entity) error {
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
				return fmt.Errorf("fire truck: add transform: %w", err)
			}
			return nil
		},
		func(e ecs.Entity) error {
			truck := &component.FireTruck{
				Water:      spec.MaxWater,
				MaxWater:   spec.MaxWater,
				Health:     spec.MaxHealth,
				MaxHealth:  spec.MaxHealth,
				Damage:     1,
				Speed:      1,
				DamageStep: spec.DamageStep,
				SpeedStep:  spec.SpeedStep,
				MaxBoost:   spec.MaxBoost,
			}
			if err := ecs.Add(w, e, component.FireTruckComponent.Kind(), truck); err != nil {
				return fmt.Errorf("fire truck: add truck: %w", err)
			}
			return nil
		},
	)
}

// MoveTo places the entity's transform at x, y.
func MoveTo(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("entity %s has no transform", e)
	}
	t.X, t.Y = x, y
	return nil
}
