package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/tounesna/seeder/internal/config"
	"github.com/tounesna/seeder/internal/seed"
)

func newSeedCmd(cfg config.Config) *cobra.Command {
	var (
		url    string
		strict bool
		delay  time.Duration
		seedN  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add sample volunteers, organizations and posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seedN == 0 {
				seedN = time.Now().UnixNano()
			}
			client := newClient(cfg, url)
			slog.Debug("seeding", "url", client.BaseURL(), "delay", delay, "seed", seedN)

			s := seed.New(client,
				seed.WithRand(rand.New(rand.NewSource(seedN))), //nolint:gosec // sample data
				seed.WithDelay(delay),
				seed.WithOutput(cmd.OutOrStdout()),
			)

			res, err := s.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed %s: %w", client.BaseURL(), err)
			}

			slog.Info("seeding finished",
				"volunteers", len(res.Volunteers),
				"organizations", len(res.Organizations),
				"posts", len(res.Posts),
				"failed", res.Failed(),
			)
			if strict && res.Failed() > 0 {
				return fmt.Errorf("%d of %d records: %w", res.Failed(), res.Created()+res.Failed(), errRejected)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", cfg.DatabaseURL, "database root URL")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any record is rejected")
	cmd.Flags().DurationVar(&delay, "delay", cfg.Delay, "pause after each id generation")
	cmd.Flags().Int64Var(&seedN, "seed", cfg.Seed, "random seed, 0 for time based")
	return cmd
}
