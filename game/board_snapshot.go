package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrBadSnapshot = errors.New("malformed board snapshot")

const wildcardSymbol = "*"

// BoardSnapshot records a board's layout, one row of tile values per line
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.size)
	for y := 0; y < board.size; y++ {
		symbols := make([]string, board.size)
		for x := 0; x < board.size; x++ {
			tile := board.TileAt(x, y)
			if tile.IsWildcard() {
				symbols[x] = wildcardSymbol
			} else {
				symbols[x] = strconv.Itoa(tile.value)
			}
		}
		rows[y] = strings.Join(symbols, " ")
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the recorded layout with every tile face-down
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	size := len(rows)

	values := make([]int, 0, size*size)
	for y, row := range rows {
		symbols := strings.Fields(row)
		if len(symbols) != size {
			return nil, errors.Wrapf(ErrBadSnapshot, "row %d has %d tiles, want %d", y, len(symbols), size)
		}

		for _, symbol := range symbols {
			if symbol == wildcardSymbol {
				values = append(values, wildcardValue)
				continue
			}

			value, err := strconv.Atoi(symbol)
			if err != nil || value <= 0 {
				return nil, errors.Wrapf(ErrBadSnapshot, "invalid tile value %q", symbol)
			}
			values = append(values, value)
		}
	}

	config := BoardConfig{Size: size, Wildcard: true, Seed: snapshot.Seed}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := checkPairs(values); err != nil {
		return nil, err
	}

	board := createBoard(size, snapshot.Seed)
	board.fill(values)
	return board, nil
}

func checkPairs(values []int) error {
	totalPairs := len(values) / 2
	counts := make(map[int]int)
	for _, value := range values {
		counts[value]++
	}

	wildcards := counts[wildcardValue]
	if wildcards != len(values)%2 {
		return errors.Wrapf(ErrBadSnapshot, "%d wildcards on a board of %d tiles", wildcards, len(values))
	}

	for value := 1; value <= totalPairs; value++ {
		if counts[value] != 2 {
			return errors.Wrapf(ErrBadSnapshot, "value %d appears %d times", value, counts[value])
		}
	}
	if len(counts)-wildcards != totalPairs {
		return errors.Wrapf(ErrBadSnapshot, "values outside 1..%d", totalPairs)
	}
	return nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding board snapshot")
	}
	return &snapshot, nil
}
