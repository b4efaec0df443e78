package cmd

import (
	"context"

	"github.com/hance08/splitter/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type configureRunner struct {
	env  *env
	args []string
}

func NewConfigureCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "configure [recipient-a] [recipient-b]",
		Short: "Bind the two recipients of a ledger",
		Long: `Bind the two recipients of an unconfigured ledger.
Only the ledger owner may do this, and only once.

Recipients must be distinct, non-zero, and neither the owner nor the ledger itself.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &configureRunner{
				env:  e,
				args: args,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *configureRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}
	caller, err := r.env.resolveCaller()
	if err != nil {
		return err
	}

	a, err := addressArgOrPrompt(r.args, 0, "Recipient A address:")
	if err != nil {
		return err
	}
	b, err := addressArgOrPrompt(r.args, 1, "Recipient B address:")
	if err != nil {
		return err
	}

	if err := r.env.app.Service.Ledger.Configure(ctx, ledger, caller, a, b); err != nil {
		return err
	}

	pterm.Success.Printf("Recipients bound to ledger %s\n", ledger.Hex())
	return views.RenderRecipients(a, b, true)
}
