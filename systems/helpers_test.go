package systems

import (
	"testing"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/automoto/paddleball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// courtSystems mirrors the scene's update order, minus raw input polling
var courtSystems = []ecs.System{
	WithRoundWaiting(UpdateRoundStart),
	WithRoundInProgress(UpdatePlayerPaddle),
	WithRoundInProgress(UpdateEnemyPaddle),
	WithRoundInProgress(UpdateProjectile),
	WithRoundInProgress(UpdateScoring),
	WithRoundInProgress(UpdateWallBounce),
	WithRoundInProgress(UpdatePaddleCollisions),
	WithRoundInProgress(UpdateScoreLabels),
}

func newTestCourt(t *testing.T, seed uint64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateFrame(e)
	factory.CreateRound(e)
	factory.CreateRandom(e, seed)
	factory.CreatePrompt(e)
	factory.CreateProjectile(e)
	factory.CreatePaddle(e, cfg.PaddlePlayer)
	factory.CreatePaddle(e, cfg.PaddleEnemy)
	factory.CreateScoreLabel(e, cfg.PaddlePlayer)
	factory.CreateScoreLabel(e, cfg.PaddleEnemy)
	return e
}

// setKeys shifts the input buffers and holds the given directions this frame
func setKeys(e *ecs.ECS, up, down bool) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMoveUp] = up
	input.Current[cfg.ActionMoveDown] = down
}

// step runs one frame with a fixed delta
func step(e *ecs.ECS, dt float64) {
	round := GetOrCreateRound(e)
	round.FrameState = round.State
	GetOrCreateFrame(e).Delta = dt
	for _, system := range courtSystems {
		system(e)
	}
}

func inProgress(e *ecs.ECS) {
	round := GetOrCreateRound(e)
	round.State = cfg.RoundInProgress
	round.FrameState = cfg.RoundInProgress
}

func mustFirst(t *testing.T, e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) *donburi.Entry {
	t.Helper()
	entry, ok := tag.First(e.World)
	if !ok {
		t.Fatalf("no %s entity", tag.Name())
	}
	return entry
}

func playerPaddle(t *testing.T, e *ecs.ECS) *components.PaddleData {
	return components.Paddle.Get(mustFirst(t, e, tags.Player))
}

func enemyPaddle(t *testing.T, e *ecs.ECS) *components.PaddleData {
	return components.Paddle.Get(mustFirst(t, e, tags.Enemy))
}

func ball(t *testing.T, e *ecs.ECS) *components.ProjectileData {
	return components.Projectile.Get(mustFirst(t, e, tags.Ball))
}

func label(t *testing.T, e *ecs.ECS, side cfg.PaddleKind) *components.LabelData {
	if side == cfg.PaddleEnemy {
		return components.Label.Get(mustFirst(t, e, tags.EnemyScore))
	}
	return components.Label.Get(mustFirst(t, e, tags.PlayerScore))
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
