package components

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the rally state and both scores.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	State cfg.RoundStateID
	// FrameState is State as it was when the current frame began.
	// Update systems are gated on it so a transition takes effect next frame.
	FrameState cfg.RoundStateID

	PlayerScore int
	EnemyScore  int

	// Set by the quit action, polled by the scene once per frame
	Quit bool
}

var Round = donburi.NewComponentType[RoundData]()

// Score increments the score of the given side
func (r *RoundData) Score(side cfg.PaddleKind) {
	switch side {
	case cfg.PaddlePlayer:
		r.PlayerScore++
	case cfg.PaddleEnemy:
		r.EnemyScore++
	}
}

// ScoreOf returns the score of the given side
func (r *RoundData) ScoreOf(side cfg.PaddleKind) int {
	if side == cfg.PaddleEnemy {
		return r.EnemyScore
	}
	return r.PlayerScore
}
