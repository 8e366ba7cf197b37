package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
)

type sqliteScores struct {
	conn *sql.DB
}

// NewSQLiteScoreRepository expects the scores table created by storage.Storage.Init.
func NewSQLiteScoreRepository(conn *sql.DB) ScoreRepository {
	return &sqliteScores{
		conn: conn,
	}
}

func (that *sqliteScores) UpsertScore(ctx context.Context, name string, trophies int) error {
	if err := validateScore(name, trophies); err != nil {
		return err
	}

	query := `INSERT INTO scores (name, trophies) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET trophies = excluded.trophies`

	if _, err := that.conn.ExecContext(ctx, query, name, trophies); err != nil {
		return fmt.Errorf("can't save score: %w", err)
	}

	return nil
}

func (that *sqliteScores) ListTop(ctx context.Context, n int) ([]entity.ScoreEntry, error) {
	if n <= 0 {
		return []entity.ScoreEntry{}, nil
	}

	query := `SELECT name, trophies FROM scores ORDER BY trophies DESC, name ASC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("can't list scores: %w", err)
	}
	defer rows.Close()

	entries := make([]entity.ScoreEntry, 0, n)
	for rows.Next() {
		var entry entity.ScoreEntry
		if err = rows.Scan(&entry.Name, &entry.Trophies); err != nil {
			return nil, fmt.Errorf("can't scan score: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list scores: %w", err)
	}

	return entries, nil
}

func (that *sqliteScores) GetScore(ctx context.Context, name string) (int, error) {
	query := `SELECT trophies FROM scores WHERE name = ?`

	var trophies int

	err := that.conn.QueryRowContext(ctx, query, name).Scan(&trophies)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperror.ErrScoreNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("can't find score: %w", err)
	}

	return trophies, nil
}
