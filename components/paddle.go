package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PaddleData struct {
	Kind     cfg.PaddleKind
	Position math.Vec2 // top-left
	Size     math.Vec2 // width, height

	// Body mirrors Position for overlap tests, synced before each check
	Body *resolv.ConvexPolygon
}

var Paddle = donburi.NewComponentType[PaddleData]()

// CenterY returns the vertical center of the paddle
func (p *PaddleData) CenterY() float64 {
	return p.Position.Y + p.Size.Y/2
}
