package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"valorant-coach-service/internal/http/handler"
	"valorant-coach-service/internal/http/middleware"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/repository"
	"valorant-coach-service/internal/security"
	"valorant-coach-service/internal/service"
)

type Dependencies struct {
	AuthHandler            *handler.AuthHandler
	MatchHandler           *handler.MatchHandler
	PracticeSessionHandler *handler.PracticeSessionHandler
	StrategyHandler        *handler.StrategyHandler
	DashboardHandler       *handler.DashboardHandler
	JWTManager             *security.JWTManager
	Users                  repository.UserRepository
	Blacklist              service.TokenBlacklist
	CORSOrigins            []string
	AuthRateLimitRPM       int
	EnableOTelHTTP         bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   dep.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(middleware.BodyLimit(1 << 20))

	authLimiter := middleware.NewRateLimiter(authRateLimit(dep.AuthRateLimitRPM), time.Minute).Middleware()
	requireAuth := middleware.AuthMiddleware(dep.JWTManager, dep.Users, dep.Blacklist)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.With(authLimiter).Post("/register", dep.AuthHandler.Register)
	r.With(authLimiter).Post("/login", dep.AuthHandler.Login)
	r.With(authLimiter).Post("/token/refresh", dep.AuthHandler.Refresh)
	r.With(requireAuth).Post("/logout", dep.AuthHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/matches", dep.MatchHandler.List)
		r.Post("/matches", dep.MatchHandler.Create)
		r.Get("/sessions", dep.PracticeSessionHandler.List)
		r.Post("/sessions", dep.PracticeSessionHandler.Create)
		r.Get("/strategies", dep.StrategyHandler.List)
		r.Post("/strategies", dep.StrategyHandler.Create)
		r.Get("/dashboard", dep.DashboardHandler.Get)
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}

func authRateLimit(rpm int) int {
	if rpm <= 0 {
		return 30
	}
	return rpm
}
