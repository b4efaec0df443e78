package cmd

import (
	"context"

	"github.com/hance08/splitter/internal/constants"
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/spf13/cobra"
)

type historyRunner struct {
	env     *env
	limit   int
	payouts bool
}

func NewHistoryCmd(e *env) *cobra.Command {
	runner := &historyRunner{env: e}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the operation history of a ledger",
		Long:  `Show the most recent operations on a ledger, newest first. With --payouts, list released payouts instead.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&runner.limit, "limit", "n", constants.DefaultHistoryLimit, "maximum number of entries")
	cmd.Flags().BoolVarP(&runner.payouts, "payouts", "p", false, "list payouts instead of operations")
	return cmd
}

func (r *historyRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}

	if r.payouts {
		payouts, err := r.env.app.Service.Ledger.Payouts(ctx, ledger, r.limit)
		if err != nil {
			return err
		}
		return views.RenderPayouts(payouts, r.env.formatAmount())
	}

	entries, err := r.env.app.Service.Ledger.History(ctx, ledger, r.limit)
	if err != nil {
		return err
	}
	return views.RenderHistory(entries, r.env.formatAmount())
}
