package factory

import (
	"github.com/automoto/paddleball/archetypes"
	"github.com/automoto/paddleball/components"
	cfg "github.com/automoto/paddleball/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePrompt spawns the "press to start" prompt state.
// The prompt fades out and back in using a *gween.Sequence that is restarted when it ends.
func CreatePrompt(ecs *ecs.ECS) *donburi.Entry {
	prompt := archetypes.Prompt.Spawn(ecs)

	tw := gween.NewSequence()
	tw.Add(
		gween.New(1, cfg.Prompt.MinAlpha, cfg.Prompt.PulseDuration, ease.InOutSine),
		gween.New(cfg.Prompt.MinAlpha, 1, cfg.Prompt.PulseDuration, ease.InOutSine),
	)
	components.Prompt.SetValue(prompt, components.PromptData{
		Pulse: tw,
		Alpha: 1,
	})

	return prompt
}
