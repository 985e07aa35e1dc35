package session

import (
	"net/http"
	"time"
)

// CookieStore keeps the credential in a single cookie with a fixed lifetime.
type CookieStore struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func (s CookieStore) Read(r *http.Request) string {
	c, err := r.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s CookieStore) Write(w http.ResponseWriter, credential string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    credential,
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		Expires:  time.Now().Add(s.MaxAge),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(1, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
