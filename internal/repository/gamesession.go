package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nmakarov/sweeper/internal/game"
	"github.com/nmakarov/sweeper/internal/sessions"
)

type GameSession struct {
	GameSessionId string
	PlayerId      *int64
	Rows          int
	Cols          int
	MineCount     int
	Status        string
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func sessionArgs(s *game.Session) (pgx.NamedArgs, error) {
	state, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	args := pgx.NamedArgs{
		"rows":       s.Board.Rows,
		"cols":       s.Board.Cols,
		"mine_count": s.Board.MineCount,
		"status":     s.Status.String(),
		"state":      state,
		"started_at": nil,
		"ended_at":   nil,
	}
	if !s.StartedAt.IsZero() {
		args["started_at"] = s.StartedAt
	}
	if !s.EndedAt.IsZero() {
		args["ended_at"] = s.EndedAt
	}
	return args, nil
}

func (q *Queries) CreateGameSession(
	ctx context.Context, s *game.Session, playerID *int64,
) (*GameSession, error) {
	args, err := sessionArgs(s)
	if err != nil {
		return nil, err
	}
	args["game_session_id"] = uuid.NewString()
	args["player_id"] = nil
	if playerID != nil {
		args["player_id"] = *playerID
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			game_session_id, player_id, rows, cols, mine_count, status, state, started_at, ended_at
		)
		VALUES (
			@game_session_id, @player_id, @rows, @cols, @mine_count, @status, @state, @started_at, @ended_at
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId string,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId string, s *game.Session,
) error {
	args, err := sessionArgs(s)
	if err != nil {
		return err
	}
	args["game_session_id"] = gameSessionId
	_, err = q.db.Exec(
		ctx,
		`UPDATE game_session
		SET status = @status
			, state = @state
			, started_at = @started_at
			, ended_at = @ended_at
			, updated_at = now()
		WHERE game_session_id = @game_session_id;`,
		args,
	)
	return err
}

// Sessions adapts Queries to [sessions.Repository].
type Sessions struct {
	q *Queries
}

func NewSessions(q *Queries) *Sessions {
	return &Sessions{q: q}
}

func (s *Sessions) Create(
	ctx context.Context, g *game.Session, playerID *int64,
) (*sessions.Record, error) {
	row, err := s.q.CreateGameSession(ctx, g, playerID)
	if err != nil {
		return nil, err
	}
	return &sessions.Record{
		ID:       row.GameSessionId,
		PlayerID: row.PlayerId,
		Session:  g,
	}, nil
}

func (s *Sessions) Fetch(ctx context.Context, id string) (*sessions.Record, error) {
	row, err := s.q.FetchGameSession(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sessions.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	g, err := game.DecodeSession(row.State)
	if err != nil {
		return nil, err
	}
	return &sessions.Record{
		ID:       row.GameSessionId,
		PlayerID: row.PlayerId,
		Session:  g,
	}, nil
}

func (s *Sessions) Update(ctx context.Context, rec *sessions.Record) error {
	return s.q.UpdateGameSession(ctx, rec.ID, rec.Session)
}
