package component

import "github.com/milk9111/kroy/powerup"

// PowerUp places a pickup in the world. The entity's Transform mirrors the
// pickup's spawn position.
type PowerUp struct {
	State *powerup.PowerUp
}

var PowerUpComponent = NewComponent[PowerUp]()
