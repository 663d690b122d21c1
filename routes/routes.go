package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/workout-api/handlers"
	"github.com/Dosada05/workout-api/middleware"
	"github.com/Dosada05/workout-api/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/workout-api/docs"
)

// Options holds the router settings that come from configuration.
type Options struct {
	AllowedOrigins []string
	// JWTSecret guards the write endpoints when non-empty.
	JWTSecret []byte
	Logger    *slog.Logger
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	athleteHandler *handlers.AthleteHandler,
	healthHandler *handlers.HealthHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", healthHandler.Health)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Get("/ws/atletas", webSocketHandler.ServeWs)

	router.Route("/atletas", func(r chi.Router) {
		r.Get("/", athleteHandler.ListAthletes)

		r.Group(func(r chi.Router) {
			if len(opts.JWTSecret) > 0 {
				r.Use(middleware.Authenticate(opts.JWTSecret))
				r.Use(middleware.Authorize(models.RoleAdmin, models.RoleOrganizer))
			}

			r.Post("/", athleteHandler.CreateAthlete)
			r.Post("/export", athleteHandler.ExportAthletes)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
