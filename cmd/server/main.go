package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/paging-service/internal/config"
	"github.com/maxviazov/paging-service/internal/handler"
	"github.com/maxviazov/paging-service/internal/logger"
	"github.com/maxviazov/paging-service/internal/repository"
	"github.com/maxviazov/paging-service/internal/repository/memory"
	"github.com/maxviazov/paging-service/internal/repository/postgres"
	"github.com/maxviazov/paging-service/internal/service"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
	appLogger.Info().Msg("service stopped")
}

func configPath() string {
	if p := os.Getenv("APP_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

// storage is the set of repositories the services need.
type storage struct {
	items  repository.ItemRepository
	tx     repository.TxManager
	pinger repository.Pinger
	close  func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (storage, error) {
	if cfg.Storage.Driver == "memory" {
		store := memory.NewStore()
		return storage{
			items:  memory.NewItemRepository(store),
			tx:     memory.NewTxManager(store),
			pinger: memory.NewPinger(),
			close:  func() {},
		}, nil
	}

	repo, err := repository.New(ctx, cfg, &logger)
	if err != nil {
		return storage{}, err
	}
	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, repo.Pool()); err != nil {
			repo.Close()
			return storage{}, fmt.Errorf("migrations: %w", err)
		}
		logger.Info().Msg("migrations applied")
	}
	return storage{
		items:  postgres.NewItemRepository(repo.Pool()),
		tx:     postgres.NewTxManager(repo.Pool()),
		pinger: postgres.NewPinger(repo.Pool()),
		close:  repo.Close,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	st, err := openStorage(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer st.close()

	opts := service.Options{
		DefaultSize:        cfg.Paging.DefaultSize,
		MaxSize:            cfg.Paging.MaxSize,
		MaxEnumeratedPages: cfg.Paging.MaxEnumeratedPages,
	}
	pagingSvc := service.NewPagingService(opts, appLogger)
	itemSvc := service.NewItemService(st.items, st.tx, opts, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r, st.pinger, pagingSvc, itemSvc, appLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().
			Str("addr", srv.Addr).
			Str("storage", cfg.Storage.Driver).
			Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
