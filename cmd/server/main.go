package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PassKeeper/internal/config"
	"PassKeeper/internal/desktop"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/handlers"
	"PassKeeper/internal/logger"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/repo"
	"PassKeeper/internal/service"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("PassKeeper web shell\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = sugar.Sync()
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("server failed", "error", err)
		_ = sugar.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// хранилище открывается один раз и закрывается при остановке
	db, err := repo.InitDB(cfg.StoreDSN())
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(db); err != nil {
			sugar.Warnw("close database", "error", err)
		}
	}()
	if err := repo.RunMigrations(db); err != nil {
		return err
	}
	sugar.Infow("database ready", "dialect", db.Dialector.Name())

	credService := service.NewCredentialService(repo.NewCredentialRepository(db), sugar)
	d := desktop.System{}
	h := handlers.NewHandler(credService, generator.New(), d, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Starting server", "addr", cfg.BaseURL)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	if cfg.OpenBrowser {
		if err := d.OpenURL(cfg.ServerURL()); err != nil {
			sugar.Warnw("open browser", "error", err)
		}
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
