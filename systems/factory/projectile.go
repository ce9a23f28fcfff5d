package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns the ball at the screen center
func CreateProjectile(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	center := cfg.C.Center()
	components.Projectile.SetValue(ball, components.ProjectileData{
		Position: center,
		Radius:   cfg.Ball.Radius,
		AngleDeg: cfg.Ball.InitialAngle,
		Body:     resolv.NewCircle(center.X, center.Y, cfg.Ball.Radius),
	})

	return ball
}
