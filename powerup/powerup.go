package powerup

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

const (
	DefaultRadius = 25
	DefaultHealth = 1
)

// Config holds the tunables shared by a batch of spawns.
type Config struct {
	Radius float64 `yaml:"radius"`
	Health int     `yaml:"health"`
}

func DefaultConfig() Config {
	return Config{Radius: DefaultRadius, Health: DefaultHealth}
}

func (c Config) withDefaults() Config {
	if c.Radius <= 0 {
		c.Radius = DefaultRadius
	}
	if c.Health <= 0 {
		c.Health = DefaultHealth
	}
	return c
}

// PowerUp is a pickup that applies its variant to the first player that comes
// within Radius and is then spent.
type PowerUp struct {
	pos     cp.Vector
	variant Variant
	health  int
	radius  float64
	id      string
}

// New spawns a power-up with an explicit variant.
func New(pos cp.Vector, v Variant, cfg Config) (*PowerUp, error) {
	if v == nil {
		return nil, ErrNoVariant
	}
	if !finite(pos.X) || !finite(pos.Y) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	cfg = cfg.withDefaults()
	return &PowerUp{
		pos:     pos,
		variant: v,
		health:  cfg.Health,
		radius:  cfg.Radius,
		id:      IdentityOf(pos),
	}, nil
}

// Spawn creates a power-up with a variant drawn from c.
func (c *Catalog) Spawn(pos cp.Vector, cfg Config) (*PowerUp, error) {
	return New(pos, c.Random(), cfg)
}

// NewRandom creates a power-up with a variant drawn from DefaultCatalog.
func NewRandom(pos cp.Vector, cfg Config) (*PowerUp, error) {
	return DefaultCatalog.Spawn(pos, cfg)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p *PowerUp) Position() cp.Vector { return p.pos }
func (p *PowerUp) Variant() Variant    { return p.variant }
func (p *PowerUp) Health() int         { return p.health }
func (p *PowerUp) Radius() float64     { return p.radius }
func (p *PowerUp) ID() string          { return p.id }

// Consumed reports whether the power-up has been spent.
func (p *PowerUp) Consumed() bool { return p.health <= 0 }

// InRange reports whether pos is within the pickup radius. The boundary is
// inclusive.
func (p *PowerUp) InRange(pos cp.Vector) bool {
	return pos.Distance(p.pos) <= p.radius
}

// Update runs one tick against the player. It applies the effect at most once
// and reports whether it did.
func (p *PowerUp) Update(t Target) (bool, error) {
	if p.variant == nil {
		return false, ErrNoVariant
	}
	if p.Consumed() {
		return false, nil
	}
	if t == nil {
		return false, ErrNilTarget
	}
	if !p.InRange(t.Position()) {
		return false, nil
	}
	if err := Apply(p.variant, t); err != nil {
		return false, fmt.Errorf("powerup: apply %s: %w", p.id, err)
	}
	p.Damage(1)
	return true, nil
}

// Damage lowers health by n. Health never goes back up.
func (p *PowerUp) Damage(n int) {
	if n <= 0 {
		return
	}
	p.health -= n
}

// Save returns the persisted form of the variant.
func (p *PowerUp) Save() string {
	return Encode(p.variant)
}

// Load replaces the variant with the one encoded in data. On error the
// power-up is left unchanged.
func (p *PowerUp) Load(data string) error {
	v, err := Decode(data)
	if err != nil {
		return fmt.Errorf("powerup: load %s: %w", p.id, err)
	}
	return p.SetVariant(v)
}

// SetVariant replaces the variant. A nil variant is rejected and leaves the
// power-up unchanged.
func (p *PowerUp) SetVariant(v Variant) error {
	if v == nil {
		return ErrNoVariant
	}
	p.variant = v
	return nil
}
