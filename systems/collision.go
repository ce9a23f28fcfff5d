package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/automoto/paddleball/tags"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddleCollisions bounces the ball off either paddle.
// Both paddles are tested every frame; if both report a hit both bounces apply in order.
func UpdatePaddleCollisions(e *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Projectile.Get(ballEntry)
	random := GetOrCreateRandom(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if ballOverlaps(ball, components.Paddle.Get(entry)) {
			ball.Position.X -= cfg.Bounce.Adjustment
			bounceOffPaddle(ball, random)
		}
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if ballOverlaps(ball, components.Paddle.Get(entry)) {
			ball.Position.X += cfg.Bounce.Adjustment
			bounceOffPaddle(ball, random)
		}
	})
}

// bounceOffPaddle mirrors the heading horizontally
func bounceOffPaddle(ball *components.ProjectileData, random *components.RandomData) {
	ball.AngleDeg = 180 - ball.AngleDeg + bounceJitter(random)
	ball.AngleDeg = normalizeAngle(ball.AngleDeg)
}

// ballOverlaps syncs both collision bodies to their entity positions and
// tests the circle against the paddle rectangle.
// resolv only reports edge crossings, so a ball fully inside the paddle
// is caught by the center test.
func ballOverlaps(ball *components.ProjectileData, paddle *components.PaddleData) bool {
	if ball.Body == nil || paddle.Body == nil {
		return false
	}
	ball.Body.SetPosition(ball.Position.X, ball.Position.Y)
	paddle.Body.SetPosition(paddle.Position.X, paddle.Position.Y)
	if ball.Body.Intersection(0, 0, paddle.Body) != nil {
		return true
	}
	return paddle.Body.PointInside(vector.Vector{ball.Position.X, ball.Position.Y})
}

// GetOrCreateRandom returns the singleton Random component, creating a
// time-seeded one if needed.
func GetOrCreateRandom(e *ecs.ECS) *components.RandomData {
	entry, ok := components.Random.First(e.World)
	if !ok {
		entry = factory.CreateRandom(e, 0)
	}
	return components.Random.Get(entry)
}
