package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trophy/testing/suite"
)

func newPlayedSession() *entity.Session {
	session := entity.NewSession("123", entity.HardDifficulty)
	session.Board.Place(4, entity.PlayerX)
	session.Board.Place(0, entity.PlayerO)
	session.PlayerName = "alice"
	session.Trophies = 6
	session.LastMove = 0

	return &session
}

func runSessionRepositoryTests(t *testing.T, newRepo func(t *testing.T) (context.Context, SessionRepository)) {
	t.Helper()

	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a session in the middle of a game
		session := newPlayedSession()
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with its ID
		stored, err := repo.GetByID(ctx, session.ID)

		// Then: the whole snapshot is restored
		require.NoError(t, err)
		assert.Equal(t, session, stored)
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		ctx, repo := newRepo(t)

		session := newPlayedSession()
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: the same session is saved after a reset
		session.Board = entity.Board{}
		session.Trophies = 11
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// Then: the latest snapshot wins
		stored, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 11, stored.Trophies)
		assert.Equal(t, 0, stored.Board.Count(entity.PlayerX))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// When: GetByID is called with a non-existent ID
		stored, err := repo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned with an empty session
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Empty(t, stored.ID)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, repo := newRepo(t)

		session := newPlayedSession()
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: DeleteByID is called
		require.NoError(t, repo.DeleteByID(ctx, session.ID))

		// Then: the session can no longer be found
		_, err := repo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestRedisSessionRepository(t *testing.T) {
	runSessionRepositoryTests(t, func(t *testing.T) (context.Context, SessionRepository) {
		ctx, st := suite.New(t)
		return ctx, NewSessionRepository(st.Redis, 0)
	})
}

func TestMemorySessionRepository(t *testing.T) {
	runSessionRepositoryTests(t, func(_ *testing.T) (context.Context, SessionRepository) {
		return context.Background(), NewMemorySessionRepository()
	})
}
