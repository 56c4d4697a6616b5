package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nmakarov/sweeper/internal/middleware"
	"github.com/nmakarov/sweeper/internal/sessions"
)

type Highscores struct {
	log    *logrus.Logger
	scores sessions.Highscores
}

func NewHighscores(log *logrus.Logger, scores sessions.Highscores) *Highscores {
	return &Highscores{log: log, scores: scores}
}

func (h *Highscores) list(
	w http.ResponseWriter, r *http.Request, filter sessions.HighscoreFilter,
) {
	scores, err := h.scores.ListHighscores(r.Context(), filter)
	if errors.Is(err, sessions.ErrHighscoresUnavailable) {
		w.WriteHeader(http.StatusNotImplemented)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to list highscores: ", err)
		return
	}
	if scores == nil {
		scores = []sessions.Highscore{}
	}
	sendJSONOrLog(w, h.log, scores)
}

func (h *Highscores) List(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseHighscoreFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}
	h.list(w, r, filter)
}

// ListOwn lists the calling player's won games.
func (h *Highscores) ListOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	filter, err := ParseHighscoreFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}
	filter.Username = &claims.Username
	h.list(w, r, filter)
}
