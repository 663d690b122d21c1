package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/workout-api/feed"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub      *feed.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler accepts upgrades from the given origins; "*" allows any.
func NewWebSocketHandler(hub *feed.Hub, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// ServeWs godoc
// @Summary Feed de cadastros em tempo real
// @Tags atletas
// @Description Conexão WebSocket; cada cadastro gera um evento ATHLETE_REGISTERED.
// @Success 101 {string} string "Switching Protocols"
// @Router /ws/atletas [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed",
			slog.String("remote_addr", r.RemoteAddr),
			slog.Any("error", err),
		)
		return
	}

	h.hub.Serve(conn)
}
