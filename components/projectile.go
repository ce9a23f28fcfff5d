package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is the ball. AngleDeg is the direction of travel in degrees.
type ProjectileData struct {
	Position math.Vec2 // center
	Radius   float64
	AngleDeg float64

	// Body mirrors Position for overlap tests, synced before each check
	Body *resolv.Circle
}

var Projectile = donburi.NewComponentType[ProjectileData]()
