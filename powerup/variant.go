package powerup

import (
	"math/rand/v2"
	"sync"
)

// Variant is one of the closed set of power-up effects. The set is sealed by
// the unexported methods: only the types in this file implement it.
type Variant interface {
	Tag() string
	apply(t Target)
}

type (
	Water  struct{}
	Health struct{}
	Damage struct{}
	Speed  struct{}
	Shield struct{}
)

func (Water) Tag() string  { return "WATER" }
func (Health) Tag() string { return "HEALTH" }
func (Damage) Tag() string { return "DAMAGE" }
func (Speed) Tag() string  { return "SPEED" }
func (Shield) Tag() string { return "SHIELD" }

func (Water) String() string  { return "Water" }
func (Health) String() string { return "Health" }
func (Damage) String() string { return "Damage" }
func (Speed) String() string  { return "Speed" }
func (Shield) String() string { return "Shield" }

var variants = [...]Variant{Water{}, Health{}, Damage{}, Speed{}, Shield{}}

// Variants returns every variant in canonical order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants[:])
	return out
}

// Catalog draws variants from a single long-lived random source. The zero
// value seeds itself on first use.
type Catalog struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalog returns a catalog drawing from src. A nil src seeds from the
// runtime's entropy.
func NewCatalog(src rand.Source) *Catalog {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Catalog{rng: rand.New(src)}
}

// DefaultCatalog is shared by every randomized spawn that does not bring its
// own catalog.
var DefaultCatalog = NewCatalog(nil)

// Random returns one of the five variants with equal probability.
func (c *Catalog) Random() Variant {
	c.mu.Lock()
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	i := c.rng.IntN(len(variants))
	c.mu.Unlock()
	return variants[i]
}

// Random draws from DefaultCatalog.
func Random() Variant {
	return DefaultCatalog.Random()
}
