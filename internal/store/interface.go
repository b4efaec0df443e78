package store

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type Repository interface {
	// Ledger Operations
	CreateLedger(ctx context.Context, ledger Ledger) error
	GetLedger(ctx context.Context, address common.Address) (*Ledger, error)
	LockLedger(ctx context.Context, address common.Address) (*Ledger, error)
	ListLedgers(ctx context.Context) ([]*Ledger, error)
	CountLedgersByOwner(ctx context.Context, owner common.Address) (uint64, error)
	SetRecipients(ctx context.Context, ledger, recipientA, recipientB common.Address) error

	// Balance Operations
	GetBalances(ctx context.Context, ledger common.Address) (map[common.Address]int64, error)
	GetBalance(ctx context.Context, ledger, address common.Address) (int64, error)
	SetBalance(ctx context.Context, ledger, address common.Address, amount int64) error

	// Journal Operations
	AppendJournal(ctx context.Context, entry JournalEntry) error
	ListJournal(ctx context.Context, ledger common.Address, limit int) ([]*JournalEntry, error)
	CreatePayout(ctx context.Context, payout Payout) error
	ListPayouts(ctx context.Context, ledger common.Address, limit int) ([]*Payout, error)

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}

var _ Repository = (*Store)(nil)
