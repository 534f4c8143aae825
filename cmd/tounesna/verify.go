package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tounesna/seeder/internal/config"
	"github.com/tounesna/seeder/internal/verify"
)

func newVerifyCmd(cfg config.Config) *cobra.Command {
	var (
		url    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check read access and add the test accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newClient(cfg, url)
			rep, err := verify.New(client, cmd.OutOrStdout()).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("verify %s: %w", client.BaseURL(), err)
			}
			if strict && rep.Failed > 0 {
				return fmt.Errorf("%d requests: %w", rep.Failed, errRejected)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", cfg.VerifyURL, "database root URL")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any request is rejected")
	return cmd
}
