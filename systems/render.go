package systems

import (
	"image/color"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawCourt renders the court for the current round state.
// While waiting the prompt is drawn first, then the same scene as in play.
func DrawCourt(e *ecs.ECS, screen *ebiten.Image) {
	round := GetOrCreateRound(e)

	switch round.State {
	case cfg.RoundWaitToStart:
		drawPrompt(e, screen)
		drawScene(e, screen)
	case cfg.RoundInProgress:
		drawScene(e, screen)
	}
}

func drawScene(e *ecs.ECS, screen *ebiten.Image) {
	drawPaddles(e, screen)
	drawProjectile(e, screen)
	drawLabels(e, screen)
}

func drawPaddles(e *ecs.ECS, screen *ebiten.Image) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		vector.FillRect(screen,
			float32(paddle.Position.X), float32(paddle.Position.Y),
			float32(paddle.Size.X), float32(paddle.Size.Y),
			cfg.Palette.Entity, false)
	})
}

func drawProjectile(e *ecs.ECS, screen *ebiten.Image) {
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Projectile.Get(entry)
		vector.FillCircle(screen,
			float32(ball.Position.X), float32(ball.Position.Y),
			float32(ball.Radius),
			cfg.Palette.Entity, true)
	})
}

func drawPrompt(e *ecs.ECS, screen *ebiten.Image) {
	alpha := float32(1)
	if entry, ok := components.Prompt.First(e.World); ok {
		alpha = components.Prompt.Get(entry).Alpha
	}

	center := cfg.C.Center()
	drawText(screen, cfg.Prompt.Text,
		int(center.X+cfg.Prompt.OffsetX), int(center.Y+cfg.Prompt.OffsetY),
		cfg.Prompt.FontSize, fade(cfg.Palette.Prompt, alpha))
}

// fade scales a premultiplied color by alpha
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
