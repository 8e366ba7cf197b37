package apperror

import "errors"

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownPolicy     = errors.New("unknown move policy")
	ErrScoreNotFound     = errors.New("score not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyPlayerName   = errors.New("player name is empty")
	ErrNegativeTrophies  = errors.New("trophies must not be negative")
)
