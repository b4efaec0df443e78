package cmd

import (
	"context"
	"fmt"

	"github.com/hance08/splitter/internal/ui/prompts"
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/hance08/splitter/internal/validation"
	"github.com/spf13/cobra"
)

type depositRunner struct {
	env    *env
	amount string
}

func NewDepositCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit value and split it between the recipients",
		Long: `Deposit value into a ledger as the caller. Each recipient is credited half;
an odd unit is credited back to the caller.

The amount is read in display units (see display.decimals). The smallest
accepted deposit is 2 base units.

Example: splitter deposit 101 --from 0xAb..`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{env: e}
			if len(args) == 1 {
				runner.amount = args[0]
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *depositRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}
	sender, err := r.env.resolveCaller()
	if err != nil {
		return err
	}

	amount, err := r.resolveAmount()
	if err != nil {
		return err
	}

	split, err := r.env.app.Service.Funds.Deposit(ctx, ledger, sender, amount)
	if err != nil {
		return err
	}

	a, b, _, err := r.env.app.Service.Ledger.Recipients(ctx, ledger)
	if err != nil {
		return err
	}
	return views.RenderSplit(split, a, b, r.env.formatAmount())
}

// resolveAmount parses the amount argument, prompting for it on a terminal.
func (r *depositRunner) resolveAmount() (int64, error) {
	if r.amount == "" {
		if !interactive() {
			return 0, fmt.Errorf("missing argument: amount")
		}
		input, err := prompts.PromptInput("Amount to deposit:", "", validation.ValidateAmount(cfg.Display.Decimals))
		if err != nil {
			return 0, err
		}
		r.amount = input
	}
	return r.env.parseAmount(r.amount)
}
