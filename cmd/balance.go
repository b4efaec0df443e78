package cmd

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/hance08/splitter/internal/validation"
	"github.com/spf13/cobra"
)

type balanceRunner struct {
	env     *env
	address string
	all     bool
}

func NewBalanceCmd(e *env) *cobra.Command {
	runner := &balanceRunner{env: e}

	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the withdrawable balance of an address",
		Long: `Show the withdrawable balance of an address on a ledger.
Without an address the caller identity is used. Unknown addresses have a balance of zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				runner.address = args[0]
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&runner.all, "all", "a", false, "list every non-zero balance on the ledger")
	return cmd
}

func (r *balanceRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}

	if r.all {
		balances, err := r.env.app.Service.Funds.Balances(ctx, ledger)
		if err != nil {
			return err
		}
		return views.RenderBalances(balances, r.env.formatAmount())
	}

	addr, err := r.resolveAddress()
	if err != nil {
		return err
	}

	amount, err := r.env.app.Service.Funds.Balance(ctx, ledger, addr)
	if err != nil {
		return err
	}
	return views.RenderBalance(addr, amount, r.env.formatAmount())
}

func (r *balanceRunner) resolveAddress() (common.Address, error) {
	if r.address != "" {
		return validation.ParseAddress(r.address)
	}
	return r.env.resolveCaller()
}
