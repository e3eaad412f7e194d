package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is anything a Session's transition function accepts
type Event interface {
	isEvent()
}

// TileSelected reports a click on the tile with the given board index
type TileSelected struct {
	ID int
}

// mismatchExpired fires once a mismatched pair has been shown for HideDelay
type mismatchExpired struct {
	session uuid.UUID
	turn    uint64
}

func (TileSelected) isEvent()    {}
func (mismatchExpired) isEvent() {}

func (event TileSelected) String() string {
	return fmt.Sprintf("TileSelected(%d)", event.ID)
}

func (event mismatchExpired) String() string {
	return fmt.Sprintf("MismatchExpired(turn %d)", event.turn)
}

// Scheduler delivers an event back to the session after a delay
type Scheduler interface {
	After(d time.Duration, event Event)
}

// Handler consumes events drained from a Loop
type Handler interface {
	Apply(event Event) Result
}

type Outcome int

const (
	Ignored Outcome = iota
	Revealed
	MatchFound
	Mismatched
	Hidden
)

func (outcome Outcome) String() string {
	switch outcome {
	case Ignored:
		return "ignored"
	case Revealed:
		return "revealed"
	case MatchFound:
		return "match"
	case Mismatched:
		return "mismatch"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

type Status struct {
	Attempts   int
	PairsFound int
	TotalPairs int
	Phase      Phase
}

type Result struct {
	Outcome Outcome
	Status  Status
}

// Notification is emitted to session subscribers
type Notification interface {
	isNotification()
}

type StatusChanged struct {
	Status Status
}

type GameComplete struct {
	Attempts int
}

func (StatusChanged) isNotification() {}
func (GameComplete) isNotification()  {}
