package recall

import (
	"github.com/they4kman/concord/game"
	"github.com/they4kman/concord/util/collections"
)

// Director never forgets a value once it has been shown face-up, and always
// finishes a pair it knows about before exploring.
type Director struct {
	session *game.Session

	// Ids of every tile whose value has been observed
	seen collections.Set[int]
	// Unmatched tile ids by observed value
	known map[int]collections.Set[int]
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.seen = collections.NewSet[int]()
	director.known = make(map[int]collections.Set[int])

	// A mismatched pair is hidden again before the next pick, so look at the
	// board after every change rather than only when asked
	session.Subscribe(func(game.Notification) {
		director.observe()
	})
	director.observe()
}

func (director *Director) Next() (int, bool) {
	board := director.session.Board()
	selection := director.session.Selection()

	if len(selection) == 1 {
		first := board.Tile(selection[0])
		if partner, ok := director.partnerOf(first); ok {
			return partner, true
		}
		return director.explore()
	}

	// A pair whose both positions are known
	for _, tile := range board.Tiles() {
		if tile.State() != game.FaceDown || !director.seen.Contains(tile.ID()) {
			continue
		}
		if _, ok := director.partnerOf(tile); ok {
			return tile.ID(), true
		}
	}

	return director.explore()
}

func (director *Director) observe() {
	for _, tile := range director.session.Board().Tiles() {
		switch tile.State() {
		case game.Matched:
			if ids, ok := director.known[tile.Value()]; ok {
				ids.Remove(tile.ID())
			}
		case game.FaceUp:
			if director.seen.Contains(tile.ID()) {
				continue
			}
			director.seen.Add(tile.ID())

			ids, ok := director.known[tile.Value()]
			if !ok {
				ids = collections.NewSet[int]()
				director.known[tile.Value()] = ids
			}
			ids.Add(tile.ID())
		}
	}
}

// partnerOf finds a face-down tile known to share the given tile's value
func (director *Director) partnerOf(tile *game.Tile) (int, bool) {
	others := director.known[tile.Value()].Difference(collections.NewSet(tile.ID()))
	for id := range others {
		if director.session.Board().Tile(id).State() == game.FaceDown {
			return id, true
		}
	}
	return 0, false
}

// explore picks the first face-down tile that has never been shown, falling
// back to any face-down tile
func (director *Director) explore() (int, bool) {
	fallback, found := 0, false
	for _, tile := range director.session.Board().Tiles() {
		if tile.State() != game.FaceDown {
			continue
		}
		if !director.seen.Contains(tile.ID()) {
			return tile.ID(), true
		}
		if !found {
			fallback, found = tile.ID(), true
		}
	}
	return fallback, found
}
