package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmakarov/sweeper/internal/config"
	"github.com/nmakarov/sweeper/internal/middleware"
	"github.com/nmakarov/sweeper/internal/repository"
)

type Auth struct {
	log     *logrus.Logger
	repo    *repository.Queries
	jwt     *config.JWT
	cookies *config.Cookies
}

func NewAuth(
	log *logrus.Logger,
	repo *repository.Queries,
	jwt *config.JWT,
	cookies *config.Cookies,
) *Auth {
	return &Auth{
		log:     log,
		repo:    repo,
		jwt:     jwt,
		cookies: cookies,
	}
}

func credentials(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return "", "", false
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("body must contain url-encoded username and password"))
		return "", "", false
	}
	if len(password) > 72 { // bcrypt input limit
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("password must not exceed 72 bytes"))
		return "", "", false
	}
	return username, password, true
}

func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := credentials(w, r)
	if !ok {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.Error(err)
		return
	}
	player, err := a.repo.CreatePlayer(r.Context(), username, hash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("username taken"))
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.Error("unable to insert player: ", err)
		return
	}
	a.signIn(w, player.PlayerId, player.Username)
}

func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := credentials(w, r)
	if !ok {
		return
	}
	player, err := a.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("username unknown"))
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.Error(err)
		return
	}
	if err := bcrypt.CompareHashAndPassword(
		player.PasswordHash, []byte(password),
	); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	a.signIn(w, player.PlayerId, player.Username)
}

func (a *Auth) signIn(w http.ResponseWriter, playerId int64, username string) {
	token, err := a.jwt.SignPlayerToken(playerId, username)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.Error("unable to sign jwt token: ", err)
		return
	}
	a.cookies.Set(w, token)
}

func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
}

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type StatusDTO struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

func (a *Auth) Status(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		a.cookies.Clear(w)
		sendJSONOrLog(w, a.log, StatusDTO{LoggedIn: false})
		return
	}
	if err := a.cookies.Refresh(w, claims); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.Error("unable to refresh cookies: ", err)
		return
	}
	sendJSONOrLog(w, a.log, StatusDTO{
		LoggedIn: true,
		Player:   &PlayerInfo{claims.PlayerId, claims.Username},
	})
}
