package main

import (
	"context"
	"fmt"

	"commissions/internal/config"
	"commissions/internal/lifecycle"
	"commissions/pkg/domain"
	"commissions/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// quoteCommand prints the commission a placement would earn if it were
// resolved now, without touching its payment request.
func quoteCommand(cfg *config.Config) *cobra.Command {
	var placement string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Prints the commission a placement would earn now",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(placement)
			if err != nil {
				return fmt.Errorf("invalid --placement %q: %w", placement, err)
			}

			ctx := context.Background()
			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			q, err := lifecycle.New(pg, lifecycle.NewOptions(cfg)).Quote(ctx, domain.PlacementID(id))
			if err != nil {
				logger.Error(ctx, "could not quote placement", zap.Error(err))

				return err
			}

			referrer := "collaborator"
			if q.Admin {
				referrer = "admin"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", q.Amount.String(), q.Rule, referrer)

			return nil
		},
	}
	cmd.Flags().StringVar(&placement, "placement", "", "placement ID")
	_ = cmd.MarkFlagRequired("placement")

	return cmd
}
