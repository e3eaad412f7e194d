package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session plays one round on one board. It must only be driven from a single
// goroutine; deferred work comes back through the Scheduler as an Event.
type Session struct {
	id    uuid.UUID
	board *Board

	attempts   int
	pairsFound int
	phase      Phase

	selection []*Tile
	turn      uint64

	scheduler   Scheduler
	subscribers []func(Notification)
	log         logrus.FieldLogger
}

func NewSession(board *Board, scheduler Scheduler, log logrus.FieldLogger) *Session {
	id := uuid.New()
	session := &Session{
		id:        id,
		board:     board,
		phase:     Idle,
		selection: make([]*Tile, 0, 2),
		scheduler: scheduler,
		log: log.WithFields(logrus.Fields{
			"session": id.String(),
			"size":    board.Size(),
		}),
	}

	if board.TotalPairs() == 0 {
		session.phase = Complete
	}

	return session
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Attempts() int {
	return session.attempts
}

func (session *Session) PairsFound() int {
	return session.pairsFound
}

func (session *Session) Phase() Phase {
	return session.phase
}

func (session *Session) IsComplete() bool {
	return session.phase == Complete
}

// Selection returns the ids of the tiles pending comparison
func (session *Session) Selection() []int {
	ids := make([]int, len(session.selection))
	for i, tile := range session.selection {
		ids[i] = tile.id
	}
	return ids
}

func (session *Session) Status() Status {
	return Status{
		Attempts:   session.attempts,
		PairsFound: session.pairsFound,
		TotalPairs: session.board.TotalPairs(),
		Phase:      session.phase,
	}
}

func (session *Session) Subscribe(fn func(Notification)) {
	session.subscribers = append(session.subscribers, fn)
}

func (session *Session) SelectTile(id int) Result {
	return session.Apply(TileSelected{ID: id})
}

// Apply is the session's only transition function; clicks and the deferred
// hide of a mismatch both go through it.
func (session *Session) Apply(event Event) Result {
	var outcome Outcome

	switch event := event.(type) {
	case TileSelected:
		outcome = session.selectTile(event.ID)
	case mismatchExpired:
		outcome = session.resolveMismatch(event)
	}

	if outcome != Ignored {
		session.emit(StatusChanged{Status: session.Status()})
		if session.phase == Complete {
			session.log.WithField("attempts", session.attempts).Info("game complete")
			session.log.Debug(session.board.Snapshot().Serialize())
			session.emit(GameComplete{Attempts: session.attempts})
		}
	}

	return Result{Outcome: outcome, Status: session.Status()}
}

func (session *Session) selectTile(id int) Outcome {
	log := session.log.WithField("tile", id)

	tile := session.board.Tile(id)
	switch {
	case tile == nil:
		log.Debug("ignoring selection of unknown tile")
		return Ignored
	case session.phase == Complete, session.phase == Resolving:
		log.WithField("phase", session.phase).Debug("ignoring selection")
		return Ignored
	case !tile.selectable():
		log.WithField("state", tile.State()).Debug("ignoring selection")
		return Ignored
	}

	tile.reveal()
	session.selection = append(session.selection, tile)

	if session.phase == Idle {
		session.phase = OneSelected
		return Revealed
	}

	session.attempts++
	session.phase = Resolving

	first, second := session.selection[0], session.selection[1]
	if first.value == second.value {
		first.match()
		second.match()
		session.pairsFound++
		session.clearSelection()

		if session.pairsFound == session.board.TotalPairs() {
			session.phase = Complete
		}

		log.WithField("value", first.value).Debug("match")
		return MatchFound
	}

	session.turn++
	session.scheduler.After(HideDelay, mismatchExpired{session: session.id, turn: session.turn})

	log.WithField("turn", session.turn).Debug("mismatch")
	return Mismatched
}

func (session *Session) resolveMismatch(event mismatchExpired) Outcome {
	if event.session != session.id || event.turn != session.turn || session.phase != Resolving {
		session.log.WithField("turn", event.turn).Debug("ignoring stale mismatch expiry")
		return Ignored
	}

	for _, tile := range session.selection {
		tile.hide()
	}
	session.clearSelection()

	return Hidden
}

func (session *Session) clearSelection() {
	session.selection = session.selection[:0]
	session.phase = Idle
}

func (session *Session) emit(notification Notification) {
	for _, fn := range session.subscribers {
		fn(notification)
	}
}
