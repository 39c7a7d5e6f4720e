package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "floodwatch/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"floodwatch/internal/auth"
	"floodwatch/internal/cache"
	"floodwatch/internal/config"
	"floodwatch/internal/db"
	"floodwatch/internal/handler"
	"floodwatch/internal/logger"
	"floodwatch/internal/objectstore"
	"floodwatch/internal/repository"
	"floodwatch/internal/router"
	"floodwatch/internal/service"
)

// @title FloodWatch API
// @version 1.0
// @description Flood management API: community posts, help requests, alerts, announcements, and emergency contacts.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
// @securityDefinitions.apikey AdminKey
// @in query
// @name admin_key
// @description Admin session token. "Authorization: Bearer <token>" is accepted too.
func main() {
	cfg := config.Load()
	logger.Init(&logger.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		fatal("database init failed", "error", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			fatal("reset database failed", "error", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		fatal("migrate failed", "error", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var adminSessions, refreshTokens auth.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		adminSessions = auth.NewRedisSessionStore(cacheClient, auth.AdminSessionKeyPrefix)
		refreshTokens = auth.NewRedisSessionStore(cacheClient, auth.RefreshTokenKeyPrefix)
	case "memory":
		adminSessions = auth.NewMemorySessionStore()
		refreshTokens = auth.NewMemorySessionStore()
	default:
		fatal("unsupported session backend", "backend", cfg.SessionBackend)
	}

	store, err := objectstore.NewDiskStore(cfg.MediaRoot, cfg.MediaBaseURL)
	if err != nil {
		fatal("object store init failed", "error", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	requestRepo := repository.NewRequestRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, adminSessions, refreshTokens, cfg.SessionTTL, nil)
	userService := service.NewUserService(userRepo, store, nil)
	postService := service.NewPostService(postRepo, store, cacheClient, nil)
	requestService := service.NewRequestService(requestRepo, userRepo, nil)
	notificationService := service.NewNotificationService(notificationRepo, nil)
	announcementService := service.NewAnnouncementService(announcementRepo, nil)
	contactService := service.NewContactService(contactRepo, nil)
	dashboardService := service.NewDashboardService(service.DashboardRepositories{
		Users:         userRepo,
		Posts:         postRepo,
		Requests:      requestRepo,
		Notifications: notificationRepo,
		Announcements: announcementRepo,
		Contacts:      contactRepo,
	}, nil)

	sqlDB, err := gormDB.DB()
	if err != nil {
		fatal("database handle failed", "error", err)
	}
	deps := map[string]handler.Pinger{"database": handler.PingFunc(sqlDB.PingContext)}
	if cfg.SessionBackend == "redis" {
		deps["redis"] = cacheClient
	}

	e := echo.New()
	e.HideBanner = true
	if err := router.Register(e, cfg, authService, jwtService, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Admin:        handler.NewAdminHandler(authService, dashboardService),
		User:         handler.NewUserHandler(userService, cfg.MaxUploadBytes),
		Post:         handler.NewPostHandler(postService, cfg.MaxUploadBytes),
		Request:      handler.NewRequestHandler(requestService),
		Notification: handler.NewNotificationHandler(notificationService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Contact:      handler.NewContactHandler(contactService),
		Media:        handler.NewMediaHandler(store),
		Health:       handler.NewHealthHandler(deps),
	}); err != nil {
		fatal("register routes failed", "error", err)
	}

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.SessionSweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := authService.SweepSessions(ctx)
		if err != nil {
			logger.Error("session sweep failed", "error", err)
			return
		}
		if n > 0 {
			logger.Info("expired sessions swept", "count", n)
		}
	}); err != nil {
		fatal("schedule session sweep failed", "error", err)
	}
	sweeper.Start()

	logger.Info("swagger documentation available", "url", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server start failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	<-sweeper.Stop().Done()

	for name, closer := range map[string]interface{ Close() error }{
		"admin sessions": adminSessions,
		"refresh tokens": refreshTokens,
		"cache":          cacheClient,
		"database":       sqlDB,
	} {
		if err := closer.Close(); err != nil {
			logger.Warn("close", "resource", name, "error", err)
		}
	}
}

// exit is replaced in tests.
var exit = os.Exit

// fatal logs through the configured logger and exits with status 1.
func fatal(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
	exit(1)
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
