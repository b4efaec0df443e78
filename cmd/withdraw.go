package cmd

import (
	"context"
	"fmt"

	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/ui/prompts"
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type withdrawRunner struct {
	env *env
	yes bool
}

func NewWithdrawCmd(e *env) *cobra.Command {
	runner := &withdrawRunner{env: e}

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw the caller's whole balance",
		Long:  `Release the caller's entire balance on the ledger. Partial withdrawals are not supported.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (r *withdrawRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}
	caller, err := r.env.resolveCaller()
	if err != nil {
		return err
	}

	balance, err := r.env.app.Service.Funds.Balance(ctx, ledger, caller)
	if err != nil {
		return err
	}
	if balance == 0 {
		return fmt.Errorf("%s has nothing to withdraw: %w", caller.Hex(), splitter.ErrInsufficientBalance)
	}

	if !r.yes && interactive() {
		confirm, err := prompts.PromptConfirm(
			fmt.Sprintf("Withdraw %s to %s?", r.env.formatAmount()(balance), caller.Hex()), false)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Withdrawal cancelled")
			return nil
		}
	}

	amount, err := r.env.app.Service.Funds.Withdraw(ctx, ledger, caller)
	if err != nil {
		return err
	}

	views.RenderWithdrawal(caller, amount, r.env.formatAmount())
	return nil
}
