package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tounesna/seeder/internal/config"
	"github.com/tounesna/seeder/internal/rtdb"
)

// errRejected is returned under --strict when the store refused records.
var errRejected = errors.New("the store rejected some records")

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd(cfg).ExecuteContext(ctx)
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "tounesna",
		Short:         "Seed, verify and emulate the Tounesna realtime database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSeedCmd(cfg),
		newVerifyCmd(cfg),
		newServeCmd(cfg),
	)
	return root
}

func newClient(cfg config.Config, baseURL string) *rtdb.Client {
	return rtdb.New(baseURL,
		rtdb.WithAuthToken(cfg.AuthToken),
		rtdb.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)
}
