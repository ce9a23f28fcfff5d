package systems

import (
	"github.com/automoto/paddleball/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePrompt advances the start prompt pulse while waiting and rewinds it
// once play begins, so every wait starts fully opaque.
func UpdatePrompt(e *ecs.ECS) {
	entry, ok := components.Prompt.First(e.World)
	if !ok {
		return
	}
	prompt := components.Prompt.Get(entry)
	if prompt.Pulse == nil {
		return
	}

	if IsRoundInProgress(e) {
		prompt.Pulse.Reset()
		prompt.Alpha = 1
		return
	}

	alpha, _, finished := prompt.Pulse.Update(float32(FrameDelta(e)))
	prompt.Alpha = alpha
	if finished {
		prompt.Pulse.Reset()
	}
}
