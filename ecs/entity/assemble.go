package entity

import "github.com/milk9111/kroy/ecs"

// assemble creates an entity and runs each step against it. If a step fails
// the entity is destroyed so no partially built entity stays in the world.
func assemble(w *ecs.World, steps ...func(ecs.Entity) error) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	for _, step := range steps {
		if err := step(e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	return e, nil
}
