package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
	"github.com/milk9111/kroy/powerup"
	"github.com/milk9111/kroy/prefabs"
)

// NewPowerUp places p in the world. The entity is saveable under p's id.
func NewPowerUp(w *ecs.World, p *powerup.PowerUp) (ecs.Entity, error) {
	if p == nil || p.Variant() == nil {
		return 0, powerup.ErrNoVariant
	}
	pos := p.Position()

	return assemble(w,
		func(e ecs.Entity) error {
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
				return fmt.Errorf("power-up: add transform: %w", err)
			}
			return nil
		},
		func(e ecs.Entity) error {
			if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: p.ID(), Save: true}); err != nil {
				return fmt.Errorf("power-up: add persistent: %w", err)
			}
			return nil
		},
		func(e ecs.Entity) error {
			if err := ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{State: p}); err != nil {
				return fmt.Errorf("power-up: add power-up: %w", err)
			}
			return nil
		},
	)
}

// SpawnPowerUps places every spawn from spec. Spawns without a variant draw
// one from catalog.
func SpawnPowerUps(w *ecs.World, spec prefabs.TuningSpec, catalog *powerup.Catalog) ([]ecs.Entity, error) {
	if catalog == nil {
		catalog = powerup.DefaultCatalog
	}
	cfg := spec.PowerUp.Config()

	out := make([]ecs.Entity, 0, len(spec.Spawns))
	for i, s := range spec.Spawns {
		pos := cp.Vector{X: s.X, Y: s.Y}

		var (
			p   *powerup.PowerUp
			err error
		)
		if s.Variant != nil && s.Variant.Variant != nil {
			p, err = powerup.New(pos, s.Variant.Variant, cfg)
		} else {
			p, err = catalog.Spawn(pos, cfg)
		}
		if err != nil {
			return out, fmt.Errorf("spawn %d: %w", i, err)
		}

		e, err := NewPowerUp(w, p)
		if err != nil {
			return out, fmt.Errorf("spawn %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
