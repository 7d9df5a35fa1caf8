package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/kroy/ecs"
	"github.com/milk9111/kroy/prefabs"
)

// PickupHook runs a designer script each time a power-up is collected. The
// script must define on_pickup(engine, tag, id); engine.emit(name) queues a
// world event carrying the pickup.
type PickupHook struct {
	path     string
	compiled *tengo.Compiled
}

const pickupDispatchScript = `
on_pickup(__engine, __tag, __id)
`

// LoadPickupHook compiles the named script from the prefab scripts.
func LoadPickupHook(name string) (*PickupHook, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("pickup hook: load %s: %w", name, err)
	}
	hook, err := NewPickupHook(src)
	if err != nil {
		return nil, fmt.Errorf("pickup hook: %s: %w", name, err)
	}
	hook.path = name
	return hook, nil
}

func NewPickupHook(src []byte) (*PickupHook, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), pickupDispatchScript...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__tag", "")
	_ = script.Add("__id", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &PickupHook{compiled: compiled}, nil
}

func (h *PickupHook) Path() string {
	return h.path
}

// Run executes on_pickup for evt. Only one pickup is in flight at a time, so
// the compiled script is reused between calls.
func (h *PickupHook) Run(w *ecs.World, evt ecs.PickupEvent) error {
	if h == nil || h.compiled == nil {
		return nil
	}
	if err := h.compiled.Set("__engine", buildPickupEngine(w, evt)); err != nil {
		return err
	}
	if err := h.compiled.Set("__tag", evt.Tag); err != nil {
		return err
	}
	if err := h.compiled.Set("__id", evt.ID); err != nil {
		return err
	}
	return h.compiled.Run()
}

func buildPickupEngine(w *ecs.World, evt ecs.PickupEvent) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, ok := tengo.ToString(args[0])
		if !ok || name == "" {
			return tengo.FalseValue, nil
		}
		w.Events().Push(ecs.Event{Type: name, Data: evt})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
