package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "hrdashboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"hrdashboard/internal/auth"
	"hrdashboard/internal/cache"
	"hrdashboard/internal/config"
	"hrdashboard/internal/db"
	"hrdashboard/internal/handler"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/notify"
	"hrdashboard/internal/repository"
	"hrdashboard/internal/router"
	"hrdashboard/internal/service"
	"hrdashboard/internal/storage"
	"hrdashboard/internal/web"
)

const shutdownTimeout = 10 * time.Second

// @title HR Dashboard API
// @version 1.0
// @description Recruiting back office: staff sessions, job postings, public applications with resume upload, spreadsheet exports and contact messages.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	if err := run(); err != nil {
		logger.Get().Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Env)
	log := logger.Get()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, !cfg.IsProduction())
	if err != nil {
		return err
	}
	if err := prepareSchema(gormDB, cfg); err != nil {
		return err
	}

	var sessionStore auth.SessionStore
	if !cfg.StatelessSessions() {
		cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "hr:")
		defer cacheClient.Close()
		if err := cacheClient.Ping(context.Background()); err != nil {
			log.Warn("redis unreachable, logins will fail until it recovers", "addr", cfg.RedisAddr, "error", err)
		}
		sessionStore = auth.NewRedisSessionStore(cacheClient)
	} else {
		log.Info("REDIS_ADDR not set, sessions live in the signed cookie only")
	}

	resumeStore, err := storage.New(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		return err
	}

	notifier := notify.New(notify.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.NotifyTo,
	})

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	appRepo := repository.NewApplicationRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	sessions := auth.NewManager(auth.NewTokenService(cfg.SessionSecret), sessionStore, cfg.SessionTTL, cfg.CookieSecure)

	// Initialize services
	appOpts := service.ApplicationOptions{
		ResumeRequired: cfg.ResumeRequired,
		MaxResumeBytes: cfg.UploadMaxBytes,
	}
	authService := service.NewAuthService(adminRepo)
	jobService := service.NewJobService(jobRepo)
	appService := service.NewApplicationService(jobRepo, appRepo, resumeStore, notifier, appOpts)
	contactService := service.NewContactService(contactRepo, notifier)
	dashboardService := service.NewDashboardService(jobRepo, appRepo, contactRepo)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		// existing admins keep the password set through /settings
		created, err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword, false)
		if err != nil {
			return err
		}
		log.Info("admin account ensured", "admin_email", cfg.AdminEmail, "created", created)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	router.Register(e, cfg, sessions, router.Handlers{
		Auth:         handler.NewAuthHandler(authService, sessions),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Jobs:         handler.NewJobHandler(jobService),
		Applications: handler.NewApplicationHandler(appService, jobService, appOpts),
		Contacts:     handler.NewContactHandler(contactService),
		Settings:     handler.NewSettingsHandler(authService),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", "addr", addr, "swagger", cfg.BaseURL+"/swagger/index.html")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

func prepareSchema(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.ResetDB {
		logger.Get().Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if cfg.AutoMigrate || cfg.ResetDB {
		return db.Migrate(gormDB)
	}
	return nil
}
