package tictactoe

import "github.com/rocketscienceinc/tictactoe-trophy/internal/entity"

const (
	winScore = 10

	// Unbounded disables the ply limit of BestMove.
	Unbounded = -1
)

// SearchResult is the move chosen by BestMove and its minimax value.
// Move is entity.NoMove when the board has no empty cell.
type SearchResult struct {
	Move  int
	Score int
}

// BestMove - returns the optimal move for sideToMove, scored from the maximizer's point of view.
// Past plyLimit plies a non-terminal node is scored as a draw; Unbounded searches the whole tree.
// Moves are tried in ascending cell order and the first best one is kept.
func BestMove(board entity.Board, sideToMove, maximizer entity.Mark, plyLimit int) SearchResult {
	s := searcher{
		board:     board,
		maximizer: maximizer,
		plyLimit:  plyLimit,
	}

	result := SearchResult{Move: entity.NoMove}
	maximizing := sideToMove == maximizer

	for cell := range s.board {
		if s.board[cell] != entity.Empty {
			continue
		}

		score := s.try(cell, sideToMove, 0)

		if result.Move == entity.NoMove || better(score, result.Score, maximizing) {
			result = SearchResult{Move: cell, Score: score}
		}
	}

	return result
}

type searcher struct {
	board     entity.Board
	maximizer entity.Mark
	plyLimit  int
}

// try - places mark at cell, scores the resulting position and always takes the mark back.
func (that *searcher) try(cell int, mark entity.Mark, depth int) int {
	that.board.Place(cell, mark)
	defer that.board.Remove(cell)

	return that.minimax(depth, mark.Opponent())
}

func (that *searcher) minimax(depth int, toMove entity.Mark) int {
	if outcome := EvaluateTerminal(&that.board); outcome.IsTerminal() {
		return that.terminalScore(outcome, depth)
	}

	if that.plyLimit != Unbounded && depth >= that.plyLimit {
		return 0
	}

	maximizing := toMove == that.maximizer
	best, found := 0, false

	for cell := range that.board {
		if that.board[cell] != entity.Empty {
			continue
		}

		score := that.try(cell, toMove, depth+1)

		if !found || better(score, best, maximizing) {
			best, found = score, true
		}
	}

	return best
}

// terminalScore prefers quick wins and slow losses by moving the score toward zero with depth.
func (that *searcher) terminalScore(outcome Outcome, depth int) int {
	switch {
	case outcome.Result == ResultDraw:
		return 0
	case outcome.Winner == that.maximizer:
		return winScore - depth
	default:
		return -winScore + depth
	}
}

func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}

	return score < best
}
