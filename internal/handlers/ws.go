package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/nmakarov/sweeper/internal/sessions"
)

// ConnectWS upgrades to a websocket and drives the session with the same
// text commands Batch accepts, answering every message with the full session
// state.
func (g *Game) ConnectWS(w http.ResponseWriter, r *http.Request) {
	rec, err := g.repo.Fetch(r.Context(), r.PathValue("id"))
	if errors.Is(err, sessions.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch game session: ", err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.log.Debug("\t> ", text)
		for _, cmd := range byPiece(text, "\n") {
			if err := executeCommand(rec.Session, g.rnd, cmd); err != nil {
				g.log.Error("command: ", err)
				return
			}
			if rec.Session.Status.Terminal() {
				break
			}
		}
		if err := g.repo.Update(r.Context(), rec); err != nil {
			g.log.Error("unable to update game session: ", err)
			return
		}
		if err := c.WriteJSON(NewGameSessionDTO(rec)); err != nil {
			g.log.Error("write: ", err)
			break
		}
	}
}
