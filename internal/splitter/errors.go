package splitter

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("invalid address")
	ErrZeroAddress        = fmt.Errorf("%w: zero address", ErrValidation)
	ErrDuplicateRecipient = fmt.Errorf("%w: recipients must be distinct", ErrValidation)
	ErrRecipientIsOwner   = fmt.Errorf("%w: recipient can't be the owner", ErrValidation)
	ErrRecipientIsLedger  = fmt.Errorf("%w: recipient can't be the ledger itself", ErrValidation)
	ErrSelfOwned          = fmt.Errorf("%w: ledger can't own itself", ErrValidation)

	ErrAlreadyConfigured = errors.New("ledger already configured")
	ErrNotOwner          = errors.New("caller is not the ledger owner")
	ErrNotConfigured     = errors.New("ledger has no recipients")

	ErrInvalidAmount   = errors.New("invalid amount")
	ErrBalanceOverflow = fmt.Errorf("%w: balance overflow", ErrInvalidAmount)

	ErrInsufficientBalance = errors.New("insufficient balance")
)
