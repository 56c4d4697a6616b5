// Package sessions abstracts where game sessions live. The postgres-backed
// implementation is in internal/repository, the embedded sqlite one in
// internal/store.
package sessions

import (
	"context"
	"errors"

	"github.com/nmakarov/sweeper/internal/game"
)

var (
	ErrNotFound = errors.New("game session not found")
	// ErrHighscoresUnavailable is returned by backends that do not keep a
	// queryable score table.
	ErrHighscoresUnavailable = errors.New("highscores unavailable on this backend")
)

// Record is one stored game with its public id and optional owner.
type Record struct {
	ID       string
	PlayerID *int64
	Session  *game.Session
}

type Repository interface {
	Create(ctx context.Context, s *game.Session, playerID *int64) (*Record, error)
	Fetch(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, rec *Record) error
}

type Highscore struct {
	GameSessionId string  `json:"game_session_id"`
	Username      *string `json:"username"`
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	MineCount     int     `json:"mine_count"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

// HighscoreFilter narrows the score listing; nil fields match everything.
type HighscoreFilter struct {
	Username  *string
	Rows      *int
	Cols      *int
	MineCount *int
}

type Highscores interface {
	ListHighscores(ctx context.Context, filter HighscoreFilter) ([]Highscore, error)
}
