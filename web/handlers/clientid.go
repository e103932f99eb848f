package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const clientIDCookieName = "pokeplot-client"

// getClientID identifies the browser by cookie so filter selections survive a reload. A client without a valid
// cookie gets a new random identifier, or its remote address if no randomness is available.
func getClientID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(clientIDCookieName); err == nil && validClientID(cookie.Value) {
		return cookie.Value
	}

	identifier := r.RemoteAddr
	var randomBytes [16]byte
	if _, err := rand.Read(randomBytes[:]); err == nil {
		identifier = hex.EncodeToString(randomBytes[:])
	}
	http.SetCookie(w, &http.Cookie{
		Name:     clientIDCookieName,
		Value:    identifier,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return identifier
}

func validClientID(id string) bool {
	return id != "" && len(id) <= 64
}
