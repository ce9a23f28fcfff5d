package systems

import (
	cfg "github.com/automoto/paddleball/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRoundStart serves the ball on a fresh UP or DOWN press.
// Nothing else moves on the frame the serve happens.
func UpdateRoundStart(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionMoveUp).JustPressed && !GetAction(input, cfg.ActionMoveDown).JustPressed {
		return
	}
	StartRound(e)
}

// StartRound transitions from waiting to in progress
func StartRound(e *ecs.ECS) {
	round := GetOrCreateRound(e)
	if round.State != cfg.RoundWaitToStart {
		return
	}
	round.State = cfg.RoundInProgress
}

// IsRoundInProgress returns true if the ball is in play
func IsRoundInProgress(e *ecs.ECS) bool {
	return GetOrCreateRound(e).State == cfg.RoundInProgress
}

// UpdateQuit flags the round for exit when the quit action is pressed
func UpdateQuit(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionQuit).JustPressed {
		GetOrCreateRound(e).Quit = true
	}
}

// ShouldQuit returns true once the quit action has been pressed
func ShouldQuit(e *ecs.ECS) bool {
	return GetOrCreateRound(e).Quit
}
