package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/ideahub/backend/internal/config"
	"github.com/ideahub/backend/internal/handler"
	"github.com/ideahub/backend/internal/logging"
	"github.com/ideahub/backend/internal/repository"
	"github.com/ideahub/backend/internal/server"
	"github.com/ideahub/backend/internal/service"
	"github.com/ideahub/backend/internal/validation"
	"github.com/ideahub/backend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logger := logging.Setup(cfg.LogLevel)

	options := validation.DefaultOptions()
	if cfg.FormOptionsFile != "" {
		if options, err = validation.LoadOptions(cfg.FormOptionsFile); err != nil {
			logging.Fatal("load form options failed", "path", cfg.FormOptionsFile, "error", err)
		}
		logger.Info("form options loaded", "path", cfg.FormOptionsFile)
	}

	if cfg.MigrateOnStart {
		mg, err := repository.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("init migrations failed", "error", err)
		}
		if err := mg.Up(); err != nil {
			_ = mg.Close()
			logging.Fatal("apply migrations failed", "error", err)
		}
		if err := mg.Close(); err != nil {
			logger.Warn("close migrator", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, repository.PoolConfig{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	v := validation.NewValidator(options)
	contactService := service.NewContactService(repository.NewPgContactRepository(db.DB), v)
	projectService := service.NewProjectService(repository.NewPgProjectRepository(db.DB), v)

	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)
	defer limiter.Close()

	h := server.NewHandler(server.Deps{
		DB:          db,
		Contacts:    contactService,
		Projects:    projectService,
		Options:     options,
		FrontendURL: cfg.FrontendURL,
		Limiter:     limiter,
		Static:      web.Static(),
	})

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logging.Fatal("listen failed", "addr", cfg.Addr(), "error", err)
	}
	if err := server.Run(ctx, server.New(cfg.Addr(), h), ln, cfg.ShutdownTimeout); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
