package handlers

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/nmakarov/sweeper/internal/game"
	"github.com/nmakarov/sweeper/internal/sessions"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Rows           int  `schema:"rows,required"`
	Cols           int  `schema:"cols,required"`
	MineCount      int  `schema:"mine_count,required"`
	CascadeFlagged bool `schema:"cascade_flagged"`
}

func ParseNewGameDTO(query url.Values) (NewGameDTO, error) {
	var dto NewGameDTO
	err := dec.Decode(&dto, query)
	return dto, err
}

type PositionDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePositionDTO(query url.Values) (PositionDTO, error) {
	var dto PositionDTO
	err := dec.Decode(&dto, query)
	return dto, err
}

type HighscoreFilterDTO struct {
	Username  *string `schema:"username"`
	Rows      *int    `schema:"rows"`
	Cols      *int    `schema:"cols"`
	MineCount *int    `schema:"mine_count"`
}

func ParseHighscoreFilterDTO(query url.Values) (sessions.HighscoreFilter, error) {
	var dto HighscoreFilterDTO
	err := dec.Decode(&dto, query)
	return sessions.HighscoreFilter(dto), err
}

// GameSessionDTO is the wire shape of one game as the board view plus
// bookkeeping; cell values follow [game.CellInfo].
type GameSessionDTO struct {
	GameSessionId string          `json:"game_session_id"`
	Rows          int             `json:"rows"`
	Cols          int             `json:"cols"`
	MineCount     int             `json:"mine_count"`
	Cells         []game.CellInfo `json:"cells"`
	Status        string          `json:"status"`
	StartedAt     *int64          `json:"started_at,omitempty"`
	EndedAt       *int64          `json:"ended_at,omitempty"`
	PlaytimeMs    *int64          `json:"playtime_ms,omitempty"`
}

func NewGameSessionDTO(rec *sessions.Record) *GameSessionDTO {
	s := rec.Session
	view := s.View()
	dto := &GameSessionDTO{
		GameSessionId: rec.ID,
		Rows:          view.Rows,
		Cols:          view.Cols,
		MineCount:     view.MineCount,
		Cells:         view.Cells,
		Status:        s.Status.String(),
	}
	if !s.StartedAt.IsZero() {
		startedAt := s.StartedAt.UnixMilli()
		dto.StartedAt = &startedAt
	}
	if !s.EndedAt.IsZero() {
		endedAt := s.EndedAt.UnixMilli()
		dto.EndedAt = &endedAt
		playtime := s.Playtime().Milliseconds()
		dto.PlaytimeMs = &playtime
	}
	return dto
}
