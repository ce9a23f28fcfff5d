package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PromptData struct {
	Pulse *gween.Sequence
	Alpha float32
}

var Prompt = donburi.NewComponentType[PromptData]()
