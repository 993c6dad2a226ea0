package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/deportesurjc/platform/internal/auth"
	"github.com/deportesurjc/platform/internal/guard"
	"github.com/deportesurjc/platform/internal/handler"
	"github.com/deportesurjc/platform/internal/repository"
	"github.com/deportesurjc/platform/internal/service"
	"github.com/deportesurjc/platform/internal/standings"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool               *pgxpool.Pool
	JWTMgr             *auth.JWTManager
	Logger             *slog.Logger
	CORSAllowedOrigins string
	AuthRateLimit      int
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	jwtMgr := deps.JWTMgr
	logger := deps.Logger

	// Repositories
	teamRepo := repository.NewTeamRepository()
	resultRepo := repository.NewResultRepository()
	userRepo := repository.NewUserRepository()
	facilityRepo := repository.NewFacilityRepository()
	reservationRepo := repository.NewReservationRepository()
	outboxRepo := repository.NewOutboxRepository()

	// Standings reconciler: the only writer of team aggregates.
	reconciler := standings.NewReconciler(teamRepo, outboxRepo, logger)

	// Services
	authSvc := service.NewAuthService(pool, userRepo, outboxRepo, jwtMgr)
	resultSvc := service.NewResultService(pool, teamRepo, resultRepo, outboxRepo, reconciler, logger)
	reservationSvc := service.NewReservationService(pool, facilityRepo, reservationRepo, outboxRepo, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	teamHandler := handler.NewTeamHandler(teamRepo, pool)
	resultHandler := handler.NewResultHandler(resultSvc)
	facilityHandler := handler.NewFacilityHandler(facilityRepo, pool)
	reservationHandler := handler.NewReservationHandler(reservationSvc)

	corsMW := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(deps.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})

	authLimiter := guard.NewRateLimiter(deps.AuthRateLimit, time.Minute)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(corsMW.Handler)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(pool))

	// Auth routes (no auth, rate limited)
	r.Route("/auth", func(r chi.Router) {
		r.Use(guard.Middleware(authLimiter))
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Public reads
	r.Get("/teams", teamHandler.List)
	r.Get("/teams/standings", teamHandler.Standings)
	r.Get("/teams/{id}", teamHandler.Get)
	r.Get("/teams/{id}/results", resultHandler.ListByTeam)
	r.Get("/facilities", facilityHandler.List)

	// User-authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthenticateUser(jwtMgr))

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", reservationHandler.List)
			r.Post("/", reservationHandler.Create)
			r.Delete("/{id}", reservationHandler.Delete)
		})
	})

	// Admin routes: team/facility management and the result lifecycle.
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthenticateAdmin(jwtMgr))

		r.Post("/teams", teamHandler.Create)
		r.Post("/facilities", facilityHandler.Create)

		r.Route("/results", func(r chi.Router) {
			r.Post("/", resultHandler.Create)
			r.Put("/{id}", resultHandler.Update)
			r.Delete("/{id}", resultHandler.Delete)
		})
	})

	return r
}
