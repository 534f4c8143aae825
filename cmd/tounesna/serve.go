package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tounesna/seeder/internal/config"
	"github.com/tounesna/seeder/internal/emulator"
	"github.com/tounesna/seeder/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local emulator of the realtime database REST interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend: sqlite, leveldb or postgres")
	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file, LevelDB directory or Postgres DSN")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	s, err := store.Open(ctx, cfg.Backend, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	defer func() { _ = s.Close() }()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           emulator.NewHandler(s, cfg.Secret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting emulator", "addr", cfg.Addr, "backend", s.Backend, "auth", cfg.Secret != "")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
