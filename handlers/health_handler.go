package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		timeout: 2 * time.Second,
	}
}

// Health godoc
// @Summary Verificar saúde do serviço
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string "Banco indisponível"
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		serviceUnavailableResponse(w, r, "database unavailable")
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
