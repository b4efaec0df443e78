package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/store"
	"github.com/pterm/pterm"
)

// HandleError prints err and exits. Interrupted prompts exit quietly.
func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Capitalize(err.Error()))
	if hint := Hint(err); hint != "" {
		pterm.Info.Println(hint)
	}
	os.Exit(1)
}

func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Hint suggests the next step for errors a user can fix.
func Hint(err error) string {
	switch {
	case errors.Is(err, splitter.ErrNotConfigured):
		return "Bind the recipients first with 'splitter configure'"
	case errors.Is(err, splitter.ErrAlreadyConfigured):
		return "Recipients are fixed once bound; create a new ledger to use different ones"
	case errors.Is(err, splitter.ErrNotOwner):
		return "Run the command with --from set to the ledger owner"
	case errors.Is(err, splitter.ErrBalanceOverflow):
		return "A balance on this ledger would exceed its limit; withdraw it before depositing more"
	case errors.Is(err, splitter.ErrInvalidAmount):
		return "Deposits must be at least 2 base units"
	case errors.Is(err, splitter.ErrInsufficientBalance):
		return "Check the balance with 'splitter balance'"
	case errors.Is(err, store.ErrLedgerNotFound):
		return "List known ledgers with 'splitter ledgers'"
	}
	return ""
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
