package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/ui/prompts"
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/hance08/splitter/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type createRunner struct {
	env        *env
	owner      string
	recipientA string
	recipientB string
	setDefault bool
}

func NewCreateCmd(e *env) *cobra.Command {
	runner := &createRunner{env: e}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new ledger",
		Long: `Create a new ledger owned by --owner (or the caller identity).

With --recipient-a and --recipient-b the recipients are bound right away.
Without them the ledger stays unconfigured until the owner runs 'splitter configure'.

Example: splitter create --recipient-a 0xAb.. --recipient-b 0xCd..`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&runner.owner, "owner", "o", "", "ledger owner (default: the caller identity)")
	cmd.Flags().StringVarP(&runner.recipientA, "recipient-a", "a", "", "first recipient")
	cmd.Flags().StringVarP(&runner.recipientB, "recipient-b", "b", "", "second recipient")
	cmd.Flags().BoolVar(&runner.setDefault, "set-default", false, "save the new ledger as defaults.ledger")
	cmd.MarkFlagsRequiredTogether("recipient-a", "recipient-b")

	return cmd
}

func (r *createRunner) Run(ctx context.Context) error {
	owner, err := r.resolveOwner()
	if err != nil {
		return err
	}

	var a, b common.Address
	if r.recipientA != "" {
		if a, err = validation.ParseAddress(r.recipientA); err != nil {
			return fmt.Errorf("recipient A: %w", err)
		}
		if b, err = validation.ParseAddress(r.recipientB); err != nil {
			return fmt.Errorf("recipient B: %w", err)
		}
	} else if interactive() {
		bind, err := prompts.PromptConfirm("Bind recipients now?", true)
		if err != nil {
			return err
		}
		if bind {
			if a, err = addressArgOrPrompt(nil, 0, "Recipient A address:"); err != nil {
				return err
			}
			if b, err = addressArgOrPrompt(nil, 0, "Recipient B address:"); err != nil {
				return err
			}
		}
	}

	header, err := r.env.app.Service.Ledger.DeployLedger(ctx, owner, a, b)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Ledger %s created\n", header.Address.Hex())
	if err := views.RenderLedger(header, nil, r.env.formatAmount()); err != nil {
		return err
	}

	if r.setDefault {
		viper.Set("defaults.ledger", header.Address.Hex())
		if err := viper.WriteConfig(); err != nil {
			pterm.Warning.Printf("Could not save default ledger: %v\n", err)
		} else {
			pterm.Info.Println("Saved as the default ledger")
		}
	}
	return nil
}

func (r *createRunner) resolveOwner() (common.Address, error) {
	if r.owner != "" {
		return validation.ParseAddress(r.owner)
	}
	return r.env.resolveCaller()
}
