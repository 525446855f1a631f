package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	log *slog.Logger
	db  Pinger
}

// Health reports liveness and, when a database is configured, whether it answers a ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.log.WarnContext(r.Context(), "Health check failed", "error", err)
			writeError(h.log, w, r, http.StatusServiceUnavailable, "DB ping failed")
			return
		}
	}

	writeJSON(h.log, w, r, http.StatusOK, map[string]string{"status": "ok"})
}
