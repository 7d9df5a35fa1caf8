package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/kroy/ecs/component"
)

// truckTarget exposes a fire truck entity to power-up effects.
type truckTarget struct {
	transform *component.Transform
	truck     *component.FireTruck
}

func (t *truckTarget) Position() cp.Vector {
	return t.transform.Vector()
}

func (t *truckTarget) RefillWater() {
	t.truck.Water = t.truck.MaxWater
}

func (t *truckTarget) RefillHealth() {
	t.truck.Health = t.truck.MaxHealth
}

func (t *truckTarget) IncreaseDamage() {
	t.truck.Damage = boost(t.truck.Damage, t.truck.DamageStep, t.truck.MaxBoost)
}

func (t *truckTarget) IncreaseSpeed() {
	t.truck.Speed = boost(t.truck.Speed, t.truck.SpeedStep, t.truck.MaxBoost)
}

// SetShield restarts the shield timer. A second shield resets the remaining
// time, it does not stack.
func (t *truckTarget) SetShield(seconds float64) {
	t.truck.ShieldSeconds = seconds
}

func boost(v, step, max float64) float64 {
	v += step
	if max > 0 && v > max {
		return max
	}
	return v
}
