package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/store"
)

// loadLedger locks the ledger row and rebuilds the in-memory ledger from
// repo. repo must be transaction-bound; the lock is held until it ends.
func loadLedger(ctx context.Context, repo store.Repository, address common.Address) (*splitter.Ledger, *store.Ledger, error) {
	header, err := repo.LockLedger(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	balances, err := repo.GetBalances(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	l, err := splitter.Restore(splitter.State{
		Owner:      header.Owner,
		Address:    header.Address,
		RecipientA: header.RecipientA,
		RecipientB: header.RecipientB,
		Balances:   balances,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ledger %s: %w: %v", address.Hex(), store.ErrInvalidState, err)
	}

	return l, header, nil
}

// saveBalances writes every balance that differs between before and after.
func saveBalances(ctx context.Context, repo store.Repository, ledger common.Address, before, after map[common.Address]int64) error {
	for addr, amount := range after {
		if before[addr] == amount {
			continue
		}
		if err := repo.SetBalance(ctx, ledger, addr, amount); err != nil {
			return err
		}
	}

	for addr := range before {
		if _, ok := after[addr]; ok {
			continue
		}
		if err := repo.SetBalance(ctx, ledger, addr, 0); err != nil {
			return err
		}
	}
	return nil
}
