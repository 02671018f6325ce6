package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"race_timing/internal/api/handler"
	"race_timing/internal/api/middleware"
	"race_timing/internal/app/service"
	"race_timing/internal/common"
	"race_timing/internal/common/security"
)

type Services struct {
	Auth       *service.AuthService
	User       *service.UserService
	Category   *service.CategoryService
	Team       *service.TeamService
	Event      *service.EventService
	Competitor *service.CompetitorService
	Checkpoint *service.CheckpointService
	Time       *service.TimeService
}

// NewRouter builds the full route table. Everything under /api requires a
// bearer token except user registration and login.
func NewRouter(issuer *security.TokenIssuer, svc Services, baseURL string) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the Authorization: Bearer token and puts claims in context.
	// Enforcement happens in middleware.Authenticator on protected groups.
	r.Use(jwtauth.Verifier(issuer.Auth()))

	// Public health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]string{
			"msg":  "API Working",
			"docs": baseURL + "/api-docs",
		})
	})

	r.Route("/api", func(api chi.Router) {
		// User registration and login are the only public API routes.
		authHandler := handler.NewAuthHandler(svc.Auth)
		api.Route("/users", func(users chi.Router) {
			users.Group(authHandler.RegisterRoutes)

			users.Group(func(protected chi.Router) {
				protected.Use(middleware.Authenticator)
				handler.NewUserHandler(svc.User).RegisterRoutes(protected)
			})
		})

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator)

			protected.Route("/categories", handler.NewCategoryHandler(svc.Category).RegisterRoutes)
			protected.Route("/teams", handler.NewTeamHandler(svc.Team).RegisterRoutes)
			protected.Route("/events", handler.NewEventHandler(svc.Event).RegisterRoutes)
			protected.Route("/competitors", handler.NewCompetitorHandler(svc.Competitor).RegisterRoutes)
			protected.Route("/checkpoints", handler.NewCheckpointHandler(svc.Checkpoint).RegisterRoutes)
			protected.Route("/times", handler.NewTimeHandler(svc.Time).RegisterRoutes)
		})
	})

	return r
}
