package config

// RoundStateID is the state of the current rally
type RoundStateID int

const (
	RoundWaitToStart RoundStateID = iota
	RoundInProgress
)

func (s RoundStateID) String() string {
	switch s {
	case RoundWaitToStart:
		return "WaitToStart"
	case RoundInProgress:
		return "InProgress"
	}
	return "Unknown"
}

// PaddleKind identifies which side of the court a paddle or score belongs to
type PaddleKind int

const (
	PaddlePlayer PaddleKind = iota
	PaddleEnemy
)
