package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/app"
	"github.com/hance08/splitter/internal/ui/prompts"
	"github.com/hance08/splitter/internal/ui/views"
	"github.com/hance08/splitter/internal/utils"
	"github.com/hance08/splitter/internal/validation"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

// env carries the application and the global flags shared by every command.
type env struct {
	app    *app.App
	ledger string
	from   string
}

var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// resolveLedger picks the ledger from --ledger, then defaults.ledger, then
// asks the user to choose among the known ledgers.
func (e *env) resolveLedger(ctx context.Context) (common.Address, error) {
	if e.ledger != "" {
		return validation.ParseAddress(e.ledger)
	}
	if cfg.Defaults.Ledger != "" {
		return validation.ParseAddress(cfg.Defaults.Ledger)
	}

	ledgers, err := e.app.Service.Ledger.ListLedgers(ctx)
	if err != nil {
		return common.Address{}, err
	}
	if len(ledgers) == 0 {
		return common.Address{}, fmt.Errorf("no ledgers yet, create one with 'splitter create'")
	}
	if len(ledgers) == 1 {
		return ledgers[0].Address, nil
	}
	if !interactive() {
		return common.Address{}, fmt.Errorf("no ledger selected, pass --ledger or set defaults.ledger")
	}

	options := make([]string, 0, len(ledgers))
	for _, l := range ledgers {
		options = append(options, l.Address.Hex())
	}
	selected, err := prompts.PromptSelect("Select a ledger:", options, options[0])
	if err != nil {
		return common.Address{}, err
	}
	return validation.ParseAddress(selected)
}

// resolveCaller picks the acting address from --from, then
// defaults.identity, then an interactive prompt that may save the answer.
func (e *env) resolveCaller() (common.Address, error) {
	if e.from != "" {
		return validation.ParseAddress(e.from)
	}
	if cfg.Defaults.Identity != "" {
		return validation.ParseAddress(cfg.Defaults.Identity)
	}
	if !interactive() {
		return common.Address{}, fmt.Errorf("no caller address, pass --from or set defaults.identity")
	}

	input, save, err := prompts.PromptInitIdentity()
	if err != nil {
		return common.Address{}, err
	}
	addr, err := validation.ParseAddress(input)
	if err != nil {
		return common.Address{}, err
	}

	if save {
		viper.Set("defaults.identity", addr.Hex())
		if err := viper.WriteConfig(); err != nil {
			pterm.Warning.Printf("Could not save identity to config: %v\n", err)
		} else {
			cfg.Defaults.Identity = addr.Hex()
			pterm.Info.Println("Default identity saved")
		}
	}
	return addr, nil
}

func (e *env) formatAmount() views.AmountFormatter {
	return func(amount int64) string {
		s := utils.FormatUnits(amount, cfg.Display.Decimals)
		if cfg.Display.Symbol == "" {
			return s
		}
		return s + " " + cfg.Display.Symbol
	}
}

func (e *env) parseAmount(s string) (int64, error) {
	amount, err := utils.ParseUnits(s, cfg.Display.Decimals)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// addressArgOrPrompt parses args[i] when present, otherwise prompts for it.
func addressArgOrPrompt(args []string, i int, message string) (common.Address, error) {
	if i < len(args) {
		return validation.ParseAddress(args[i])
	}
	if !interactive() {
		return common.Address{}, fmt.Errorf("missing argument: %s", message)
	}

	input, err := prompts.PromptAddress(message, "")
	if err != nil {
		return common.Address{}, err
	}
	return validation.ParseAddress(input)
}
