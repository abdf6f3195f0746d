package handlers

import (
	"net/http"

	"slhgateway/internal/monitoring"
)

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"service": "slh-investor-gateway",
		"status":  "running",
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready runs the quick probe set. Load balancers poll it, so the
// Telegram getMe call is skipped.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	report := h.selftest.Run(r.Context(), true)
	respondJSON(w, statusCode(report.Status), report)
}

// SelfTest runs the full probe set including Telegram and BSC.
func (h *Handler) SelfTest(w http.ResponseWriter, r *http.Request) {
	report := h.selftest.Run(r.Context(), false)
	respondJSON(w, statusCode(report.Status), report)
}

func statusCode(status monitoring.Status) int {
	if status == monitoring.StatusError {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
