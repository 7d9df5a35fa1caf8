package powerup

import "github.com/jakecoffman/cp"

// ShieldSeconds is how long a Shield pickup protects the player.
const ShieldSeconds = 10

// Target is the player entity a power-up mutates.
type Target interface {
	Position() cp.Vector
	IncreaseDamage()
	RefillHealth()
	SetShield(seconds float64)
	IncreaseSpeed()
	RefillWater()
}

func (Water) apply(t Target)  { t.RefillWater() }
func (Health) apply(t Target) { t.RefillHealth() }
func (Damage) apply(t Target) { t.IncreaseDamage() }
func (Speed) apply(t Target)  { t.IncreaseSpeed() }
func (Shield) apply(t Target) { t.SetShield(ShieldSeconds) }

// Apply issues the single operation v maps to on t.
func Apply(v Variant, t Target) error {
	if v == nil {
		return ErrUnreachableVariant
	}
	if t == nil {
		return ErrNilTarget
	}
	v.apply(t)
	return nil
}
