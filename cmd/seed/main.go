package main

import (
	"context"
	"flag"
	"os"

	"hrdashboard/internal/config"
	"hrdashboard/internal/db"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/repository"
	"hrdashboard/internal/service"
)

// Seed creates the staff admin, or resets its password when it exists.
// Credentials come from ADMIN_EMAIL and ADMIN_PASSWORD unless given as flags.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Env)
	log := logger.Get()

	email := flag.String("email", cfg.AdminEmail, "admin email")
	password := flag.String("password", cfg.AdminPassword, "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Error("admin email and password are required (ADMIN_EMAIL / ADMIN_PASSWORD or -email / -password)")
		os.Exit(2)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, false)
	if err != nil {
		log.Error("connect database", "error", err)
		os.Exit(1)
	}
	log.Info("connected to database", "driver", cfg.DBDriver)

	if err := db.Migrate(gormDB); err != nil {
		log.Error("run migrations", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(repository.NewAdminRepository(gormDB))
	created, err := authService.EnsureAdmin(context.Background(), *email, *password, true)
	if err != nil {
		log.Error("seed admin", "error", err)
		os.Exit(1)
	}

	if created {
		log.Info("admin created", "admin_email", *email)
	} else {
		log.Info("admin password reset", "admin_email", *email)
	}
}
