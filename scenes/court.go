package scenes

import (
	"sync"

	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/systems"
	"github.com/automoto/paddleball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourtScene is the single play field: two paddles, the ball and the scores
type CourtScene struct {
	ecs  *ecs.ECS
	seed uint64
	once sync.Once
}

// NewCourtScene creates a new court scene. A zero seed picks one from the wall clock.
func NewCourtScene(seed uint64) *CourtScene {
	return &CourtScene{seed: seed}
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

// ShouldClose reports whether the player asked to leave
func (cs *CourtScene) ShouldClose() bool {
	if cs.ecs == nil {
		return false
	}
	return systems.ShouldQuit(cs.ecs)
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourtScene) configure() {
	cs.ecs = NewCourtECS(cs.seed)
}

// NewCourtECS builds the court world with its systems and renderers.
func NewCourtECS(seed uint64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateFrame)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateQuit)
	e.AddSystem(systems.UpdateDebug)

	// Waiting for the serve
	e.AddSystem(systems.WithRoundWaiting(systems.UpdateRoundStart))

	// Simulation, in order
	e.AddSystem(systems.WithRoundInProgress(systems.UpdatePlayerPaddle))
	e.AddSystem(systems.WithRoundInProgress(systems.UpdateEnemyPaddle))
	e.AddSystem(systems.WithRoundInProgress(systems.UpdateProjectile))
	e.AddSystem(systems.WithRoundInProgress(systems.UpdateScoring))
	e.AddSystem(systems.WithRoundInProgress(systems.UpdateWallBounce))
	e.AddSystem(systems.WithRoundInProgress(systems.UpdatePaddleCollisions))
	e.AddSystem(systems.WithRoundInProgress(systems.UpdateScoreLabels))

	e.AddSystem(systems.UpdatePrompt)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawCourt)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateFrame(e)
	factory.CreateRound(e)
	factory.CreateRandom(e, seed)
	factory.CreateDebug(e, cfg.Debug.ShowOverlay)
	factory.CreatePrompt(e)
	factory.CreateProjectile(e)
	factory.CreatePaddle(e, cfg.PaddlePlayer)
	factory.CreatePaddle(e, cfg.PaddleEnemy)
	factory.CreateScoreLabel(e, cfg.PaddlePlayer)
	factory.CreateScoreLabel(e, cfg.PaddleEnemy)

	return e
}
