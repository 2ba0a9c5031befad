package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"valorant-coach-service/internal/app"
	"valorant-coach-service/internal/config"
	"valorant-coach-service/internal/database"
	"valorant-coach-service/internal/http/handler"
	"valorant-coach-service/internal/http/router"
	"valorant-coach-service/internal/observability"
	"valorant-coach-service/internal/repository"
	"valorant-coach-service/internal/security"
	"valorant-coach-service/internal/service"
)

var envFile string

func main() {
	root := &cobra.Command{
		Use:          "valorant-coach-service",
		Short:        "Personal esports performance tracker API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to an optional .env file")
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			return database.Migrate(db)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger, loggerProvider, err := observability.InitLogging(ctx, cfg)
	if err != nil {
		return err
	}
	runtime, err := observability.InitRuntime(ctx, cfg, logger, loggerProvider)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	var blacklist service.TokenBlacklist = service.NoopTokenBlacklist{}
	if cfg.BlacklistEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		blacklist = service.NewRedisTokenBlacklist(client, "blacklist")
		logger.Info("token blacklist enabled", "addr", cfg.RedisAddr)
	} else {
		logger.Info("token blacklist disabled, tokens expire naturally")
	}

	users := repository.NewUserRepository(db)
	matches := repository.NewMatchRepository(db)
	sessions := repository.NewPracticeSessionRepository(db)
	strategies := repository.NewStrategyRepository(db)

	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	jwtMgr := security.NewJWTManager("valorant-coach-service", cfg.JWTSecretKey, cfg.JWTRefreshSecretKey)

	authSvc := service.NewAuthService(users, hasher, jwtMgr, blacklist, cfg.AccessTokenLifetime(), cfg.RefreshTokenLifetime())
	matchSvc := service.NewMatchService(matches)
	sessionSvc := service.NewPracticeSessionService(sessions)
	strategySvc := service.NewStrategyService(strategies)
	dashboardSvc := service.NewDashboardService(matchSvc, sessionSvc, strategySvc)

	h := router.NewRouter(router.Dependencies{
		AuthHandler:            handler.NewAuthHandler(authSvc),
		MatchHandler:           handler.NewMatchHandler(matchSvc),
		PracticeSessionHandler: handler.NewPracticeSessionHandler(sessionSvc),
		StrategyHandler:        handler.NewStrategyHandler(strategySvc),
		DashboardHandler:       handler.NewDashboardHandler(dashboardSvc),
		JWTManager:             jwtMgr,
		Users:                  users,
		Blacklist:              blacklist,
		CORSOrigins:            cfg.CORSOrigins,
		AuthRateLimitRPM:       cfg.AuthRateLimitRPM,
		EnableOTelHTTP:         cfg.OTELEnabled,
	})

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a := app.New(cfg, logger, server, runtime)
	if err := a.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
