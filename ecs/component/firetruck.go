package component

// FireTruck is the player-controlled truck that power-ups act on.
type FireTruck struct {
	Water     float64
	MaxWater  float64
	Health    int
	MaxHealth int

	// Damage and Speed are multipliers raised by DamageStep and SpeedStep per
	// pickup, capped at MaxBoost.
	Damage     float64
	Speed      float64
	DamageStep float64
	SpeedStep  float64
	MaxBoost   float64

	// ShieldSeconds is the remaining shield time; zero means unshielded.
	ShieldSeconds float64
}

var FireTruckComponent = NewComponent[FireTruck]()
