package systems

import (
	"image/color"
	"strconv"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScoreLabels regenerates both score texts from the round scores
func UpdateScoreLabels(e *ecs.ECS) {
	round := GetOrCreateRound(e)

	components.Label.Each(e.World, func(entry *donburi.Entry) {
		label := components.Label.Get(entry)
		label.Text = strconv.Itoa(round.ScoreOf(label.Side))
	})
}

func drawLabels(e *ecs.ECS, screen *ebiten.Image) {
	components.Label.Each(e.World, func(entry *donburi.Entry) {
		label := components.Label.Get(entry)
		drawText(screen, label.Text, int(label.Position.X), int(label.Position.Y), label.FontSize, cfg.Palette.Label)
	})
}

// drawText draws s with its top-left corner at x, y
func drawText(screen *ebiten.Image, s string, x, y, size int, clr color.Color) {
	face := fonts.Face(size)
	text.Draw(screen, s, face, x, y+fonts.Ascent(face), clr)
}
