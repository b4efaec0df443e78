package cmd

import (
	"context"

	"github.com/hance08/splitter/internal/ui/views"
	"github.com/spf13/cobra"
)

type recipientsRunner struct {
	env *env
}

func NewRecipientsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recipients",
		Short: "Show the recipients of a ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &recipientsRunner{env: e}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *recipientsRunner) Run(ctx context.Context) error {
	ledger, err := r.env.resolveLedger(ctx)
	if err != nil {
		return err
	}

	a, b, ok, err := r.env.app.Service.Ledger.Recipients(ctx, ledger)
	if err != nil {
		return err
	}
	return views.RenderRecipients(a, b, ok)
}
