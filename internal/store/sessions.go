package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/nmakarov/sweeper/internal/game"
	"github.com/nmakarov/sweeper/internal/sessions"
)

// record is the gob payload kept per session key.
type record struct {
	PlayerID *int64
	Session  *game.Session
}

// Sessions implements [sessions.Repository] on top of a [Store].
type Sessions struct {
	store *Store
}

func NewSessions(store *Store) *Sessions {
	return &Sessions{store: store}
}

func (s *Sessions) Create(
	ctx context.Context, g *game.Session, playerID *int64,
) (*sessions.Record, error) {
	id := uuid.NewString()
	if err := s.store.Set(id, record{PlayerID: playerID, Session: g}); err != nil {
		return nil, err
	}
	return &sessions.Record{ID: id, PlayerID: playerID, Session: g}, nil
}

func (s *Sessions) Fetch(ctx context.Context, id string) (*sessions.Record, error) {
	var rec record
	if err := s.store.Get(id, &rec); err == ErrNotFound {
		return nil, sessions.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &sessions.Record{ID: id, PlayerID: rec.PlayerID, Session: rec.Session}, nil
}

func (s *Sessions) Update(ctx context.Context, rec *sessions.Record) error {
	return s.store.Set(rec.ID, record{PlayerID: rec.PlayerID, Session: rec.Session})
}

// ListHighscores implements [sessions.Highscores]; the kv layout keeps no
// score table to query.
func (s *Sessions) ListHighscores(
	ctx context.Context, filter sessions.HighscoreFilter,
) ([]sessions.Highscore, error) {
	return nil, sessions.ErrHighscoresUnavailable
}
