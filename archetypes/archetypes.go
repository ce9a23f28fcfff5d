package archetypes

import (
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Round = newArchetype(
		components.Round,
	)
	Frame = newArchetype(
		components.Frame,
	)
	Random = newArchetype(
		components.Random,
	)
	Prompt = newArchetype(
		components.Prompt,
	)
	Debug = newArchetype(
		components.Debug,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Projectile,
	)
	PlayerPaddle = newArchetype(
		tags.Player,
		components.Paddle,
	)
	EnemyPaddle = newArchetype(
		tags.Enemy,
		components.Paddle,
	)
	PlayerScoreLabel = newArchetype(
		tags.PlayerScore,
		components.Label,
	)
	EnemyScoreLabel = newArchetype(
		tags.EnemyScore,
		components.Label,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
