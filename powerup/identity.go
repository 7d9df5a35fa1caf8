package powerup

import (
	"strconv"

	"github.com/jakecoffman/cp"
)

// IdentityPrefix marks power-up ids in a save namespace shared with other
// entity kinds.
const IdentityPrefix = "powerup"

// IdentityOf derives the save id for a power-up spawned at pos. Two spawns at
// the same position share an id. Positions must be finite; New rejects NaN
// and infinite coordinates, which would otherwise share a key.
func IdentityOf(pos cp.Vector) string {
	return IdentityPrefix + "(" + formatCoord(pos.X) + "," + formatCoord(pos.Y) + ")"
}

func formatCoord(f float64) string {
	if f == 0 {
		// -0 == 0
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
