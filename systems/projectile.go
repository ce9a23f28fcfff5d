package systems

import (
	"math"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectile advances the ball along its heading
func UpdateProjectile(e *ecs.ECS) {
	distance := cfg.Ball.Speed * FrameDelta(e)

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Projectile.Get(entry)
		rad := ball.AngleDeg * math.Pi / 180
		ball.Position.X += distance * math.Cos(rad)
		ball.Position.Y += distance * math.Sin(rad)
	})
}

// UpdateScoring awards a point when the ball leaves the court on the left or
// right, serves it again from the center in the opposite direction and puts
// the round back into waiting. Later systems still run on this frame against
// the re-centered ball.
func UpdateScoring(e *ecs.ECS) {
	round := GetOrCreateRound(e)

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Projectile.Get(entry)

		if ball.Position.X >= float64(cfg.C.Width) {
			resetProjectile(ball)
			round.Score(cfg.PaddleEnemy)
			round.State = cfg.RoundWaitToStart
		}

		if ball.Position.X < 0 {
			resetProjectile(ball)
			round.Score(cfg.PaddlePlayer)
			round.State = cfg.RoundWaitToStart
		}
	})
}

func resetProjectile(ball *components.ProjectileData) {
	ball.Position = cfg.C.Center()
	ball.AngleDeg += 180
}

// UpdateWallBounce reflects the ball off the top and bottom edges and
// reduces its heading modulo 360.
func UpdateWallBounce(e *ecs.ECS) {
	random := GetOrCreateRandom(e)

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Projectile.Get(entry)

		if ball.Position.Y >= float64(cfg.C.Height) {
			ball.Position.Y -= cfg.Bounce.Adjustment
			ball.AngleDeg = -ball.AngleDeg + bounceJitter(random)
		} else if ball.Position.Y < 0 {
			ball.Position.Y += cfg.Bounce.Adjustment
			ball.AngleDeg = -ball.AngleDeg + bounceJitter(random)
		}

		ball.AngleDeg = normalizeAngle(ball.AngleDeg)
	})
}

// normalizeAngle keeps the sign of a and returns it within (-360, 360)
func normalizeAngle(a float64) float64 {
	return math.Mod(a, 360)
}

func bounceJitter(random *components.RandomData) float64 {
	return float64(random.Between(-cfg.Bounce.Variation, cfg.Bounce.Variation))
}
