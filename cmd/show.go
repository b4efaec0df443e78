package cmd

import (
	"context"

	"github.com/hance08/splitter/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	env *env
}

func NewShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a ledger and its balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{env: e}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *showRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}

	header, err := r.env.app.Service.Ledger.GetLedger(ctx, ledger)
	if err != nil {
		return err
	}
	balances, err := r.env.app.Service.Funds.Balances(ctx, ledger)
	if err != nil {
		return err
	}
	return views.RenderLedger(header, balances, r.env.formatAmount())
}
