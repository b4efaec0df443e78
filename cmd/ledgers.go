package cmd

import (
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewLedgersCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "ledgers",
		Aliases: []string{"ls"},
		Short:   "List all ledgers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgers, err := e.app.Service.Ledger.ListLedgers(cmd.Context())
			if err != nil {
				return err
			}
			return views.RenderLedgerList(ledgers)
		},
	}
}
