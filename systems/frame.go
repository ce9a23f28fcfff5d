package systems

import (
	"time"

	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out by tests
var now = time.Now

// UpdateFrame measures the wall clock time since the previous update and
// snapshots the round state. Must run first.
func UpdateFrame(e *ecs.ECS) {
	frame := GetOrCreateFrame(e)
	t := now()
	if frame.Last.IsZero() {
		frame.Delta = 1 / float64(cfg.C.TPS)
	} else {
		frame.Delta = t.Sub(frame.Last).Seconds()
	}
	frame.Last = t

	round := GetOrCreateRound(e)
	round.FrameState = round.State
}

// FrameDelta returns the seconds elapsed since the previous update
func FrameDelta(e *ecs.ECS) float64 {
	return GetOrCreateFrame(e).Delta
}

// WithRoundState wraps a system so it only runs when the round was in the
// given state at the start of the frame.
func WithRoundState(state cfg.RoundStateID, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if round := GetOrCreateRound(e); round.FrameState != state {
			return
		}
		system(e)
	}
}

// WithRoundWaiting wraps a system to run only while waiting for the serve.
func WithRoundWaiting(system ecs.System) ecs.System {
	return WithRoundState(cfg.RoundWaitToStart, system)
}

// WithRoundInProgress wraps a system to run only while the ball is in play.
func WithRoundInProgress(system ecs.System) ecs.System {
	return WithRoundState(cfg.RoundInProgress, system)
}

// GetOrCreateFrame returns the singleton Frame component, creating if needed.
func GetOrCreateFrame(e *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Frame))
	}
	return components.Frame.Get(entry)
}

// GetOrCreateRound returns the singleton Round component, creating if needed.
func GetOrCreateRound(e *ecs.ECS) *components.RoundData {
	if _, ok := components.Round.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Round))
		components.Round.SetValue(ent, components.RoundData{
			State:      cfg.RoundWaitToStart,
			FrameState: cfg.RoundWaitToStart,
		})
	}

	ent, _ := components.Round.First(e.World)
	return components.Round.Get(ent)
}
