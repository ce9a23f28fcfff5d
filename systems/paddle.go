package systems

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerPaddle moves the player paddle from input. UP wins over DOWN.
func UpdatePlayerPaddle(e *ecs.ECS) {
	input := getOrCreateInput(e)
	step := cfg.Paddle.Speed * FrameDelta(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)

		if GetAction(input, cfg.ActionMoveUp).Pressed {
			paddle.Position.Y -= step
		} else if GetAction(input, cfg.ActionMoveDown).Pressed {
			paddle.Position.Y += step
		}

		clampPaddle(paddle)
	})
}

// UpdateEnemyPaddle tracks the ball vertically at paddle speed, holding
// still while the ball is inside the dead zone around the paddle center.
func UpdateEnemyPaddle(e *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Projectile.Get(ballEntry)
	step := cfg.Paddle.Speed * FrameDelta(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)

		center := paddle.CenterY()
		minY := center - cfg.Paddle.DeadZone
		maxY := center + cfg.Paddle.DeadZone

		if ball.Position.Y > maxY {
			paddle.Position.Y += step
		} else if ball.Position.Y < minY {
			paddle.Position.Y -= step
		}

		clampPaddle(paddle)
	})
}

// clampPaddle keeps the paddle fully on screen vertically
func clampPaddle(paddle *components.PaddleData) {
	maxY := float64(cfg.C.Height) - paddle.Size.Y
	if paddle.Position.Y < 0 {
		paddle.Position.Y = 0
	} else if paddle.Position.Y > maxY {
		paddle.Position.Y = maxY
	}
}
