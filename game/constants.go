package game

import "time"

type TileState int
type Phase int

const (
	FaceDown TileState = iota
	FaceUp
	Matched
	Wildcard
)

var TileStates = []TileState{
	FaceDown,
	FaceUp,
	Matched,
	Wildcard,
}

func (state TileState) String() string {
	switch state {
	case FaceDown:
		return "face-down"
	case FaceUp:
		return "face-up"
	case Matched:
		return "matched"
	case Wildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

const (
	Idle Phase = iota
	OneSelected
	Resolving
	Complete
)

func (phase Phase) String() string {
	switch phase {
	case Idle:
		return "idle"
	case OneSelected:
		return "one-selected"
	case Resolving:
		return "resolving"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

const (
	// HideDelay is how long a mismatched pair stays face-up
	HideDelay = time.Second

	MinSize = 2
	MaxSize = 16

	// wildcardValue marks the single unpaired tile of an odd-sized board
	wildcardValue = 0
)
