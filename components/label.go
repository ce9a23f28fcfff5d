package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// LabelData is a piece of HUD text. Position is the top-left of the text.
type LabelData struct {
	Side     cfg.PaddleKind
	Position math.Vec2
	Text     string
	FontSize int
}

var Label = donburi.NewComponentType[LabelData]()
