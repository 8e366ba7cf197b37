package entity

import (
	"errors"
	"fmt"
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

const (
	// Human is the side controlled by the person at the keyboard.
	Human = PlayerX
	// Computer is the side played by the move policies.
	Computer = PlayerO
)

const BoardSize = 9

var ErrInvalidMark = errors.New("invalid mark")

// Line is an index triple that wins the game when filled by one mark.
type Line [3]int

// Lines - the 3 rows, 3 columns and 2 diagonals, in scan order.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMark, text)
	}

	return nil
}

// Board is the 3x3 grid stored row-major.
type Board [BoardSize]Mark

// InBounds reports whether cell is a valid index.
func InBounds(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that *Board) At(cell int) Mark {
	return that[cell]
}

func (that *Board) Place(cell int, mark Mark) {
	that[cell] = mark
}

func (that *Board) Remove(cell int) {
	that[cell] = Empty
}

func (that *Board) IsEmpty(cell int) bool {
	return InBounds(cell) && that[cell] == Empty
}

// EmptyCells returns the free cell indexes in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Count returns how many cells hold mark.
func (that *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

func (that Board) String() string {
	out := make([]byte, 0, BoardSize+2)
	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			out = append(out, '/')
		}

		if cell == Empty {
			out = append(out, '.')
			continue
		}

		out = append(out, cell.String()...)
	}

	return string(out)
}
