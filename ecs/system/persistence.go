package system

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
	"github.com/milk9111/kroy/powerup"
	"github.com/milk9111/kroy/save"
)

// PersistenceSystem writes live power-ups to a save file and restores them,
// driven by SaveRequest and LoadRequest entities.
type PersistenceSystem struct {
	path   string
	policy save.CollisionPolicy
	logger *slog.Logger
}

func NewPersistenceSystem(path string, policy save.CollisionPolicy, logger *slog.Logger) *PersistenceSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PersistenceSystem{path: path, policy: policy, logger: logger}
}

func (p *PersistenceSystem) Update(w *ecs.World) error {
	if p == nil || w == nil {
		return nil
	}

	if consumeRequests(w, component.SaveRequestComponent.Kind()) {
		f := save.NewFile(p.Snapshot(w))
		if err := save.SaveFile(p.path, f); err != nil {
			return fmt.Errorf("persistence: %w", err)
		}
		p.logger.Info("game saved", "path", p.path, "records", len(f.Records))
	}

	if consumeRequests(w, component.LoadRequestComponent.Kind()) {
		f, err := save.LoadFile(p.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				p.logger.Warn("no save file to load", "path", p.path)
				return nil
			}
			return fmt.Errorf("persistence: %w", err)
		}
		if err := p.Restore(w, f.Records); err != nil {
			return err
		}
		p.logger.Info("game loaded", "path", p.path, "records", len(f.Records))
	}
	return nil
}

func consumeRequests[T any](w *ecs.World, kind component.ComponentKind[T]) bool {
	found := false
	ecs.ForEach(w, kind, func(e ecs.Entity, _ *T) {
		found = true
		ecs.DestroyEntity(w, e)
	})
	return found
}

// Snapshot returns one record per live, saveable power-up in entity order.
func (p *PersistenceSystem) Snapshot(w *ecs.World) []save.Record {
	var records []save.Record
	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.PersistentComponent.Kind(), func(_ ecs.Entity, pu *component.PowerUp, persistent *component.Persistent) {
		if pu.State == nil || pu.State.Consumed() || !persistent.Save {
			return
		}
		records = append(records, save.Record{ID: persistent.ID, Data: pu.State.Save()})
	})
	return records
}

// Restore applies records to the power-ups already spawned in w. Power-ups
// without a record were collected before the save and are removed. Every
// record is decoded before anything changes, so a bad record leaves the world
// untouched.
func (p *PersistenceSystem) Restore(w *ecs.World, records []save.Record) error {
	index, err := save.Index(records, p.policy)
	if err != nil {
		return fmt.Errorf("persistence: %w", err)
	}

	decoded := make(map[string]powerup.Variant, len(index))
	for _, rec := range records {
		v, err := powerup.Decode(rec.Data)
		if err != nil {
			return fmt.Errorf("persistence: record %q: %w", rec.ID, err)
		}
		if index[rec.ID] == rec {
			decoded[rec.ID] = v
		}
	}

	type restore struct {
		state   *powerup.PowerUp
		variant powerup.Variant
	}
	var (
		pending   []restore
		collected []ecs.Entity
	)
	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.PersistentComponent.Kind(), func(e ecs.Entity, pu *component.PowerUp, persistent *component.Persistent) {
		if !persistent.Save || pu.State == nil {
			return
		}
		v, ok := decoded[persistent.ID]
		if !ok {
			collected = append(collected, e)
			return
		}
		pending = append(pending, restore{state: pu.State, variant: v})
	})

	for _, r := range pending {
		if err := r.state.SetVariant(r.variant); err != nil {
			return fmt.Errorf("persistence: %s: %w", r.state.ID(), err)
		}
	}
	for _, e := range collected {
		ecs.DestroyEntity(w, e)
	}
	if len(collected) > 0 {
		p.logger.Debug("removed power-ups collected before save", "count", len(collected))
	}
	return nil
}
