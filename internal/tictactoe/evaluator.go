package tictactoe

import "github.com/rocketscienceinc/tictactoe-trophy/internal/entity"

// Result is the terminal classification of a board.
type Result uint8

const (
	ResultNone Result = iota
	ResultWin
	ResultDraw
)

// Outcome - what EvaluateTerminal found. Winner is set only for ResultWin.
type Outcome struct {
	Result Result
	Winner entity.Mark
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultNone
}

// IsLine returns the common mark of line if all three cells hold it.
func IsLine(board *entity.Board, line entity.Line) (entity.Mark, bool) {
	a, b, c := board[line[0]], board[line[1]], board[line[2]]
	if a != entity.Empty && a == b && b == c {
		return a, true
	}

	return entity.Empty, false
}

// EvaluateTerminal - checks the board for a completed line, then for a draw.
// It never modifies the board.
func EvaluateTerminal(board *entity.Board) Outcome {
	for _, line := range entity.Lines {
		if mark, ok := IsLine(board, line); ok {
			return Outcome{Result: ResultWin, Winner: mark}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Result: ResultNone}
	}

	return Outcome{Result: ResultDraw}
}
