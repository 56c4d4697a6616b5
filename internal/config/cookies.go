package config

import (
	"net/http"
	"strings"
	"time"
)

// Cookies carries the player token split across two cookies: "auth" holds the
// JS-readable header.payload, "sign" holds the HttpOnly signature.
type Cookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
	jwt      *JWT
}

func NewCookies(cfg Config, jwt *JWT) *Cookies {
	return &Cookies{
		Domain:   cfg.Domain,
		Secure:   cfg.Production(),
		SameSite: cfg.HttpCookieSameSite(),
		jwt:      jwt,
	}
}

func (c *Cookies) Set(w http.ResponseWriter, token string) {
	parts := strings.Split(token, ".")
	header, payload, signature := parts[0], parts[1], parts[2]
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		Value:    header + "." + payload,
		Domain:   c.Domain,
		Secure:   c.Secure,
		Expires:  time.Now().Add(c.jwt.TokenLifetime()),
		SameSite: c.SameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		Value:    signature,
		Domain:   c.Domain,
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: c.SameSite,
	})
}

// Refresh re-signs the claims with a fresh expiry.
func (c *Cookies) Refresh(w http.ResponseWriter, claims *PlayerClaims) error {
	token, err := c.jwt.SignPlayerToken(claims.PlayerId, claims.Username)
	if err != nil {
		return err
	}
	c.Set(w, token)
	return nil
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		MaxAge:   -1,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		MaxAge:   -1,
		Domain:   c.Domain,
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: c.SameSite,
	})
}

// ParsePlayerClaims reassembles the token from the cookie pair and verifies
// it.
func (c *Cookies) ParsePlayerClaims(r *http.Request) (*PlayerClaims, error) {
	authCookie, err := r.Cookie("auth")
	if err != nil {
		return nil, err
	}
	signCookie, err := r.Cookie("sign")
	if err != nil {
		return nil, err
	}
	return c.jwt.ParsePlayerClaims(authCookie.Value + "." + signCookie.Value)
}
