package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestHint(t *testing.T) {
	assert.Contains(t, Hint(splitter.ErrNotConfigured), "configure")
	assert.Contains(t, Hint(fmt.Errorf("deposit: %w", splitter.ErrInvalidAmount)), "at least 2")
	overflow := Hint(fmt.Errorf("deposit: %w", splitter.ErrBalanceOverflow))
	assert.Contains(t, overflow, "withdraw")
	assert.NotContains(t, overflow, "at least 2")
	assert.Contains(t, Hint(fmt.Errorf("x: %w", store.ErrLedgerNotFound)), "splitter ledgers")
	assert.Empty(t, Hint(errors.New("disk full")))
}

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(fmt.Errorf("input cancelled: %w", terminal.InterruptErr)))
	assert.False(t, IsInterrupt(splitter.ErrNotOwner))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Ledger not found", Capitalize("ledger not found"))
	assert.Equal(t, "Ä", Capitalize("ä"))
}
