package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
)

func TestNewSession(t *testing.T) {
	// When: creating a new session
	session := NewSession("s1", HardDifficulty)

	// Then: the human is to move on an empty board
	expected := Session{
		ID:         "s1",
		Phase:      PhaseAwaitingHuman,
		Status:     StatusInProgress,
		Difficulty: HardDifficulty,
		LastMove:   NoMove,
	}

	require.Equal(t, expected, session)
	assert.True(t, session.IsAwaitingHuman())
	assert.False(t, session.IsTerminal())
	assert.False(t, session.HasPlayerName())
}

func TestSession_StatusText(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    string
	}{
		{
			name:    "human to move",
			session: Session{Phase: PhaseAwaitingHuman, Status: StatusInProgress},
			want:    "Your turn",
		},
		{
			name:    "computer to move",
			session: Session{Phase: PhaseComputerThinking, Status: StatusInProgress},
			want:    "Computer's turn",
		},
		{
			name:    "human won",
			session: Session{Phase: PhaseTerminal, Status: StatusWon, Winner: PlayerX},
			want:    "X wins!",
		},
		{
			name:    "computer won",
			session: Session{Phase: PhaseTerminal, Status: StatusWon, Winner: PlayerO},
			want:    "O wins!",
		},
		{
			name:    "draw",
			session: Session{Phase: PhaseTerminal, Status: StatusDrawn},
			want:    "It's a draw!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.StatusText())
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Recognized values", func(t *testing.T) {
		for _, difficulty := range Difficulties {
			parsed, err := ParseDifficulty(difficulty.String())

			require.NoError(t, err)
			assert.Equal(t, difficulty, parsed)
		}
	})

	t.Run("Case and spaces are ignored", func(t *testing.T) {
		parsed, err := ParseDifficulty("  Impossible ")

		require.NoError(t, err)
		assert.Equal(t, ImpossibleDifficulty, parsed)
	})

	t.Run("Unknown value is an error", func(t *testing.T) {
		_, err := ParseDifficulty("medium")

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})
}
