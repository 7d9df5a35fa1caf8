package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/ecs/component"
	"github.com/milk9111/kroy/ecs/entity"
	"github.com/milk9111/kroy/ecs/system"
	"github.com/milk9111/kroy/powerup"
	"github.com/milk9111/kroy/prefabs"
	"github.com/milk9111/kroy/save"
)

// baseSpeed is how far the truck drives per tick at speed multiplier 1.
const baseSpeed = 4.0

type gameOptions struct {
	savePath  string
	collision save.CollisionPolicy
	seed      uint64
}

// Game drives a headless world: the truck tours the spawn points while the
// scheduler ticks power-ups, shields and despawns.
type Game struct {
	frames int

	logger    *slog.Logger
	spec      prefabs.TuningSpec
	catalog   *powerup.Catalog
	world     *ecs.World
	scheduler *ecs.Scheduler
	pickups   *system.PowerUpSystem
	events    *system.EventLogSystem
	player    ecs.Entity
	route     []cp.Vector
	next      int
	spawned   map[string]bool
}

func NewGame(spec prefabs.TuningSpec, opts gameOptions, logger *slog.Logger) (*Game, error) {
	var hook *system.PickupHook
	if spec.PickupScript != "" {
		h, err := system.LoadPickupHook(spec.PickupScript)
		if err != nil {
			logger.Warn("pickup hook disabled", "script", spec.PickupScript, "error", err)
		} else {
			hook = h
		}
	}

	catalog := powerup.DefaultCatalog
	if opts.seed != 0 {
		catalog = powerup.NewCatalog(rand.NewPCG(opts.seed, opts.seed))
	}

	w := ecs.NewWorld()
	player, err := entity.NewFireTruck(w, spec.Truck)
	if err != nil {
		return nil, err
	}

	pickups := system.NewPowerUpSystem(logger, hook, spec.DespawnFrames)
	events := system.NewEventLogSystem(logger)
	// Persistence runs first so a requested load lands before any pickup in
	// the same tick.
	scheduler := ecs.NewScheduler(
		system.NewPersistenceSystem(opts.savePath, opts.collision, logger),
		system.NewShieldSystem(spec.TickRate),
		pickups,
		system.NewTTLSystem(),
		events,
	)

	g := &Game{
		logger:    logger,
		spec:      spec,
		catalog:   catalog,
		world:     w,
		scheduler: scheduler,
		pickups:   pickups,
		events:    events,
		player:    player,
		spawned:   map[string]bool{},
	}
	if err := g.spawnNew(spec); err != nil {
		return nil, err
	}
	return g, nil
}

// spawnNew places the spawns of spec that have not been placed before and
// adds them to the truck's route.
func (g *Game) spawnNew(spec prefabs.TuningSpec) error {
	fresh := spec
	fresh.Spawns = nil
	for _, s := range spec.Spawns {
		id := powerup.IdentityOf(cp.Vector{X: s.X, Y: s.Y})
		if g.spawned[id] {
			g.logger.Debug("spawn point already placed", "id", id)
			continue
		}
		g.spawned[id] = true
		fresh.Spawns = append(fresh.Spawns, s)
	}
	if _, err := entity.SpawnPowerUps(g.world, fresh, g.catalog); err != nil {
		return fmt.Errorf("spawn power-ups: %w", err)
	}
	for _, s := range fresh.Spawns {
		g.route = append(g.route, cp.Vector{X: s.X, Y: s.Y})
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.drive()
	return g.scheduler.Update(g.world)
}

// drive moves the truck one tick toward the next spawn point on its route.
func (g *Game) drive() {
	if g.next >= len(g.route) {
		return
	}
	t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	truck, ok := ecs.Get(g.world, g.player, component.FireTruckComponent.Kind())
	if !ok {
		return
	}

	pos := t.Vector()
	goal := g.route[g.next]
	step := baseSpeed * truck.Speed
	if pos.Distance(goal) <= step {
		t.X, t.Y = goal.X, goal.Y
		g.next++
		return
	}
	pos = pos.Add(goal.Sub(pos).Normalize().Mult(step))
	t.X, t.Y = pos.X, pos.Y
}

// RequestSave queues a save for the next tick.
func (g *Game) RequestSave() {
	e := ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, e, component.SaveRequestComponent.Kind(), &component.SaveRequest{})
}

// RequestLoad queues a restore for the next tick.
func (g *Game) RequestLoad() {
	e := ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, e, component.LoadRequestComponent.Kind(), &component.LoadRequest{})
}

// ReloadHook recompiles the pickup script after it changed on disk.
func (g *Game) ReloadHook() {
	if g.spec.PickupScript == "" {
		return
	}
	hook, err := system.LoadPickupHook(g.spec.PickupScript)
	if err != nil {
		g.logger.Warn("pickup hook reload failed", "error", err)
		return
	}
	g.pickups.SetHook(hook)
	g.logger.Info("pickup hook reloaded", "script", hook.Path())
}

// Retune applies a new tuning spec. Power-ups already in the world keep the
// radius they were spawned with; spawn points added to the tuning appear with
// the new values.
func (g *Game) Retune(spec prefabs.TuningSpec) error {
	g.spec = spec
	before := len(g.route)
	if err := g.spawnNew(spec); err != nil {
		return err
	}
	g.logger.Info("tuning reloaded", "radius", spec.PowerUp.Radius, "health", spec.PowerUp.Health, "new_spawns", len(g.route)-before)
	return nil
}

func (g *Game) Done() bool {
	return g.next >= len(g.route)
}

func (g *Game) Summary() (frames int, pickups map[string]int, remaining int) {
	ecs.ForEach(g.world, component.PowerUpComponent.Kind(), func(ecs.Entity, *component.PowerUp) {
		remaining++
	})
	return g.frames, g.events.Pickups(), remaining
}
