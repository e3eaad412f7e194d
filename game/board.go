package game

import (
	"math/rand"

	"github.com/pkg/errors"
)

var (
	ErrSizeTooSmall = errors.New("board size too small")
	ErrSizeTooLarge = errors.New("board size too large")
	ErrOddCells     = errors.New("board has an odd number of cells")
)

type BoardConfig struct {
	Size int

	// Whether an odd cell count is filled out with a single pre-matched wildcard
	// tile, rather than rejected
	Wildcard bool

	Seed int64
}

func (config BoardConfig) Validate() error {
	switch {
	case config.Size < MinSize:
		return errors.Wrapf(ErrSizeTooSmall, "%dx%d", config.Size, config.Size)
	case config.Size > MaxSize:
		return errors.Wrapf(ErrSizeTooLarge, "%dx%d", config.Size, config.Size)
	case config.Size*config.Size%2 != 0 && !config.Wildcard:
		return errors.Wrapf(ErrOddCells, "%dx%d", config.Size, config.Size)
	}
	return nil
}

type Board struct {
	size       int // in number of tiles per side
	totalPairs int
	tiles      []Tile

	seed int64
	rand *rand.Rand
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) TotalPairs() int {
	return board.totalPairs
}

func (board *Board) NumTiles() int {
	return len(board.tiles)
}

func (board *Board) Seed() int64 {
	return board.seed
}

// NextSeed draws a seed for the following game from this board's generator
func (board *Board) NextSeed() int64 {
	return board.rand.Int63()
}

func (board *Board) Tile(id int) *Tile {
	if id >= 0 && id < len(board.tiles) {
		return &board.tiles[id]
	}
	return nil
}

func (board *Board) TileAt(x, y int) *Tile {
	if x >= 0 && y >= 0 && x < board.size && y < board.size {
		return &board.tiles[y*board.size+x]
	}
	return nil
}

func (board *Board) Tiles() []*Tile {
	tiles := make([]*Tile, len(board.tiles))
	for i := range board.tiles {
		tiles[i] = &board.tiles[i]
	}
	return tiles
}

func (board *Board) Values() []int {
	values := make([]int, len(board.tiles))
	for i, tile := range board.tiles {
		values[i] = tile.value
	}
	return values
}

func NewBoard(config BoardConfig) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	numTiles := config.Size * config.Size
	totalPairs := numTiles / 2

	// Every value twice, plus the wildcard filling an odd grid
	values := make([]int, 0, numTiles)
	for value := 1; value <= totalPairs; value++ {
		values = append(values, value, value)
	}
	if len(values) < numTiles {
		values = append(values, wildcardValue)
	}

	board := createBoard(config.Size, config.Seed)
	board.rand.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	board.fill(values)

	return board, nil
}

func createBoard(size int, seed int64) *Board {
	return &Board{
		size:       size,
		totalPairs: size * size / 2,
		tiles:      make([]Tile, size*size),
		seed:       seed,
		rand:       rand.New(rand.NewSource(seed)),
	}
}

func (board *Board) fill(values []int) {
	for i, value := range values {
		tile := &board.tiles[i]
		tile.id = i
		tile.value = value
		tile.revealed = false
		tile.matched = false

		if tile.IsWildcard() {
			tile.match()
		}
	}
}
