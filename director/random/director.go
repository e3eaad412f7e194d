package random

import (
	"math/rand"

	"github.com/they4kman/concord/game"
)

// Director selects any face-down tile, with no memory of what it has seen
type Director struct {
	session *game.Session
	rand    *rand.Rand
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.rand = rand.New(rand.NewSource(session.Board().Seed()))
}

func (director *Director) Next() (int, bool) {
	var faceDown []int
	for _, tile := range director.session.Board().Tiles() {
		if tile.State() == game.FaceDown {
			faceDown = append(faceDown, tile.ID())
		}
	}

	if len(faceDown) == 0 {
		return 0, false
	}
	return faceDown[director.rand.Intn(len(faceDown))], true
}
