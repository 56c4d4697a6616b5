package main

import (
	"math/rand/v2"
	"net/http"

	"github.com/nmakarov/sweeper/internal/config"
	"github.com/nmakarov/sweeper/internal/handlers"
	"github.com/nmakarov/sweeper/internal/middleware"
	"github.com/nmakarov/sweeper/internal/repository"
	"github.com/nmakarov/sweeper/internal/sessions"
)

func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("\"ok\""))
}

func buildHandler(
	queries *repository.Queries,
	repo sessions.Repository,
	scores sessions.Highscores,
	jwt *config.JWT,
	cookies *config.Cookies,
	rnd *rand.Rand,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", handleStatus)

	if queries != nil {
		auth := handlers.NewAuth(log, queries, jwt, cookies)
		mux.HandleFunc("POST /v1/register", auth.Register)
		mux.HandleFunc("POST /v1/login", auth.Login)
		mux.HandleFunc("POST /v1/logout", auth.Logout)
		mux.HandleFunc("GET /v1/me", auth.Status)
	}

	highscores := handlers.NewHighscores(log, scores)
	mux.HandleFunc("GET /v1/highscores", highscores.List)
	mux.HandleFunc("GET /v1/highscores/my", highscores.ListOwn)

	game := handlers.NewGame(log, repo, config.NewWebSocket(), rnd)
	mux.HandleFunc("POST /v1/game", game.Create)
	mux.HandleFunc("GET /v1/game/{id}", game.Fetch)
	mux.HandleFunc("POST /v1/game/{id}/reveal", game.Reveal)
	mux.HandleFunc("POST /v1/game/{id}/flag", game.Flag)
	mux.HandleFunc("POST /v1/game/{id}/chord", game.Chord)
	mux.HandleFunc("POST /v1/game/{id}/forfeit", game.Forfeit)
	mux.HandleFunc("POST /v1/game/{id}/batch", game.Batch)
	mux.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)

	return middleware.Wrap(mux,
		middleware.Auth(cookies),
		middleware.Logging(log),
		middleware.Cors(),
	)
}
