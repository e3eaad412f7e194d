package game

import "fmt"

type Tile struct {
	id    int
	value int

	revealed, matched bool
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%d=%d)", tile.id, tile.value)
}

func (tile *Tile) ID() int {
	return tile.id
}

func (tile *Tile) Value() int {
	return tile.value
}

func (tile *Tile) IsRevealed() bool {
	return tile.revealed
}

func (tile *Tile) IsMatched() bool {
	return tile.matched
}

func (tile *Tile) IsWildcard() bool {
	return tile.value == wildcardValue
}

// State condenses the tile's flags into what a display needs to draw it
func (tile *Tile) State() TileState {
	switch {
	case tile.IsWildcard():
		return Wildcard
	case tile.matched:
		return Matched
	case tile.revealed:
		return FaceUp
	default:
		return FaceDown
	}
}

func (tile *Tile) selectable() bool {
	return !tile.matched && !tile.revealed
}

func (tile *Tile) reveal() {
	tile.revealed = true
}

func (tile *Tile) hide() {
	// Matched tiles stay face-up for good
	if !tile.matched {
		tile.revealed = false
	}
}

func (tile *Tile) match() {
	tile.matched = true
	tile.revealed = true
}
