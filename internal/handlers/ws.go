package handlers

import (
	"net/http"
	"strings"

	"slhgateway/internal/auth"
	"slhgateway/internal/websocket"
)

// WSLedger upgrades to a websocket that streams ledger entries as they
// commit. The token rides the query string because browser websocket
// clients cannot set an Authorization header.
func (h *Handler) WSLedger(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	if _, err := auth.ParseToken(h.cfg.AdminAPISecret, token); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub)
}
