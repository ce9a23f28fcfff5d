package factory

import (
	"strconv"

	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateScoreLabel spawns the score text for one side of the court
func CreateScoreLabel(ecs *ecs.ECS, side cfg.PaddleKind) *donburi.Entry {
	var label *donburi.Entry
	offset := cfg.HUD.PlayerOffset
	switch side {
	case cfg.PaddleEnemy:
		label = archetypes.EnemyScoreLabel.Spawn(ecs)
		offset = cfg.HUD.EnemyOffset
	default:
		label = archetypes.PlayerScoreLabel.Spawn(ecs)
	}

	components.Label.SetValue(label, components.LabelData{
		Side:     side,
		Position: cfg.C.Center().Add(math.NewVec2(offset[0], offset[1])),
		Text:     strconv.Itoa(0),
		FontSize: cfg.HUD.FontSize,
	})

	return label
}
