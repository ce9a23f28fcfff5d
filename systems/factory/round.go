package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound creates the singleton round in its initial waiting state
func CreateRound(ecs *ecs.ECS) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		State:      cfg.RoundWaitToStart,
		FrameState: cfg.RoundWaitToStart,
	})
	return round
}

// CreateFrame creates the frame clock singleton
func CreateFrame(ecs *ecs.ECS) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{})
	return frame
}

// CreateRandom creates the bounce perturbation generator.
// A zero seed picks one from the wall clock.
func CreateRandom(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	random := archetypes.Random.Spawn(ecs)
	components.Random.SetValue(random, components.RandomData{
		Source: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	return random
}

// CreateDebug creates the debug overlay toggle
func CreateDebug(ecs *ecs.ECS, enabled bool) *donburi.Entry {
	debug := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(debug, components.DebugData{Enabled: enabled})
	return debug
}
