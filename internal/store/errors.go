package store

import "errors"

var (
	ErrLedgerExists        = errors.New("ledger already exists")
	ErrLedgerNotFound      = errors.New("ledger not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrUnsupportedDriver   = errors.New("unsupported database driver")
	ErrInvalidState        = errors.New("stored ledger state is invalid")
)
