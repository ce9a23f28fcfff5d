package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// RandomData holds the generator shared by every bounce
type RandomData struct {
	Source *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// Between returns a uniformly distributed int in [min, max]
func (r *RandomData) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Source.IntN(max-min+1)
}
