package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nmakarov/sweeper/internal/config"
	"github.com/nmakarov/sweeper/internal/game"
	"github.com/nmakarov/sweeper/internal/middleware"
	"github.com/nmakarov/sweeper/internal/sessions"
)

type Game struct {
	log  *logrus.Logger
	repo sessions.Repository
	ws   *config.WebSocket
	rnd  *rand.Rand
}

func NewGame(
	log *logrus.Logger,
	repo sessions.Repository,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Game {
	return &Game{
		log:  log,
		repo: repo,
		ws:   ws,
		rnd:  rnd,
	}
}

// Create starts an idle session. Mines are not placed yet; the first reveal
// decides where they may not go.
func (g *Game) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, err := game.NewSession(dto.Rows, dto.Cols, dto.MineCount)
	if err != nil {
		var ice game.InvalidConfigurationError
		if errors.As(err, &ice) {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(err))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to create game session: ", err)
		return
	}
	session.Board.CascadeFlagged = dto.CascadeFlagged

	var playerID *int64
	if claims, ok := middleware.PlayerClaims(r); ok {
		g.log.Debug("creating session for player ", claims.Username)
		playerID = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	rec, err := g.repo.Create(r.Context(), session, playerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to store game session: ", err)
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(rec))
}

func (g *Game) fetch(w http.ResponseWriter, r *http.Request) *sessions.Record {
	rec, err := g.repo.Fetch(r.Context(), r.PathValue("id"))
	if errors.Is(err, sessions.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch game session: ", err)
		return nil
	}
	return rec
}

func (g *Game) Fetch(w http.ResponseWriter, r *http.Request) {
	rec := g.fetch(w, r)
	if rec == nil {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(rec))
}

// act runs one board action against a stored session and writes the updated
// session back.
func (g *Game) act(
	w http.ResponseWriter,
	r *http.Request,
	action func(s *game.Session, row, col int) error,
) {
	pos, err := ParsePositionDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	rec := g.fetch(w, r)
	if rec == nil {
		return
	}

	if err := action(rec.Session, pos.Row, pos.Col); err != nil {
		var oob game.OutOfBoundsError
		if errors.As(err, &oob) {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(err))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to apply move: ", err)
		return
	}

	if err := g.repo.Update(r.Context(), rec); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to update game session: ", err)
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(rec))
}

func (g *Game) Reveal(w http.ResponseWriter, r *http.Request) {
	g.act(w, r, func(s *game.Session, row, col int) error {
		_, err := s.Reveal(row, col, g.rnd)
		return err
	})
}

func (g *Game) Flag(w http.ResponseWriter, r *http.Request) {
	g.act(w, r, func(s *game.Session, row, col int) error {
		_, err := s.ToggleFlag(row, col)
		return err
	})
}

func (g *Game) Chord(w http.ResponseWriter, r *http.Request) {
	g.act(w, r, func(s *game.Session, row, col int) error {
		_, err := s.Chord(row, col, g.rnd)
		return err
	})
}

func (g *Game) Forfeit(w http.ResponseWriter, r *http.Request) {
	rec := g.fetch(w, r)
	if rec == nil {
		return
	}
	rec.Session.Forfeit()
	if err := g.repo.Update(r.Context(), rec); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to update game session: ", err)
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(rec))
}
