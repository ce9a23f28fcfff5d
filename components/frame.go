package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FrameData stores the wall clock time between updates
type FrameData struct {
	Delta float64 // seconds since the previous update
	Last  time.Time
}

var Frame = donburi.NewComponentType[FrameData]()
