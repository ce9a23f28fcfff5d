package systems

import (
	"fmt"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines the collision bodies and prints loop timing and round state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).Enabled {
		return
	}

	c := cfg.Palette.Debug

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		vector.StrokeRect(screen,
			float32(paddle.Position.X), float32(paddle.Position.Y),
			float32(paddle.Size.X), float32(paddle.Size.Y),
			1, c, false)
	})

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Projectile.Get(entry)
		vector.StrokeCircle(screen,
			float32(ball.Position.X), float32(ball.Position.Y),
			float32(ball.Radius)+1,
			1, c, true)
	})

	ebitenutil.DebugPrint(screen, debugText(e, ebiten.ActualTPS(), ebiten.ActualFPS()))
}

func debugText(e *ecs.ECS, tps, fps float64) string {
	var angle float64
	if entry, ok := components.Projectile.First(e.World); ok {
		angle = components.Projectile.Get(entry).AngleDeg
	}
	round := GetOrCreateRound(e)
	input := getOrCreateInput(e)
	return fmt.Sprintf("TPS: %0.1f FPS: %0.1f dt: %0.4f\nstate: %s angle: %0.1f input: %s",
		tps, fps, FrameDelta(e), round.State, angle, input.LastInputMethod)
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.ShowOverlay})
	}
	return components.Debug.Get(entry)
}
