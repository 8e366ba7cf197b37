package entity

// Phase is the controller state of a session.
type Phase string

const (
	PhaseAwaitingHuman    Phase = "awaiting_human"
	PhaseComputerThinking Phase = "computer_thinking"
	PhaseTerminal         Phase = "terminal"
)

// Status is the outcome of the current game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

const NoMove = -1

// Session is one player's game together with the trophies won so far.
// It is owned by whoever drives the controller and replaced on every transition.
type Session struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Phase      Phase      `json:"phase"`
	Status     Status     `json:"status"`
	Winner     Mark       `json:"winner"`
	Difficulty Difficulty `json:"difficulty"`
	PlayerName string     `json:"player_name,omitempty"`
	Trophies   int        `json:"trophies"`
	LastMove   int        `json:"last_move"`
}

func NewSession(id string, difficulty Difficulty) Session {
	return Session{
		ID:         id,
		Phase:      PhaseAwaitingHuman,
		Status:     StatusInProgress,
		Difficulty: difficulty,
		LastMove:   NoMove,
	}
}

func (that Session) IsTerminal() bool {
	return that.Phase == PhaseTerminal
}

func (that Session) IsAwaitingHuman() bool {
	return that.Phase == PhaseAwaitingHuman
}

func (that Session) IsComputerThinking() bool {
	return that.Phase == PhaseComputerThinking
}

func (that Session) HasPlayerName() bool {
	return that.PlayerName != ""
}

// StatusText is the line shown next to the board.
func (that Session) StatusText() string {
	switch {
	case that.Status == StatusWon:
		return that.Winner.String() + " wins!"
	case that.Status == StatusDrawn:
		return "It's a draw!"
	case that.Phase == PhaseComputerThinking:
		return "Computer's turn"
	default:
		return "Your turn"
	}
}
