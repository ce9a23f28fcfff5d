package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePaddle spawns the player or enemy paddle, offset horizontally from the screen center
func CreatePaddle(ecs *ecs.ECS, kind cfg.PaddleKind) *donburi.Entry {
	var paddle *donburi.Entry
	offset := cfg.Paddle.PlayerOffset
	switch kind {
	case cfg.PaddleEnemy:
		paddle = archetypes.EnemyPaddle.Spawn(ecs)
		offset = cfg.Paddle.EnemyOffset
	default:
		paddle = archetypes.PlayerPaddle.Spawn(ecs)
	}

	position := cfg.C.Center().Add(math.NewVec2(offset, 0))
	size := math.NewVec2(cfg.Paddle.Width, cfg.Paddle.Height)

	components.Paddle.SetValue(paddle, components.PaddleData{
		Kind:     kind,
		Position: position,
		Size:     size,
		Body:     resolv.NewRectangle(position.X, position.Y, size.X, size.Y),
	})

	return paddle
}
