package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func (s *Store) GetBalances(ctx context.Context, ledger common.Address) (map[common.Address]int64, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(`
        SELECT address, amount
        FROM balances
        WHERE ledger = ?
    `), ledger.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	balances := make(map[common.Address]int64)
	for rows.Next() {
		var (
			address string
			amount  int64
		)
		if err := rows.Scan(&address, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances[common.HexToAddress(address)] = amount
	}

	return balances, rows.Err()
}

func (s *Store) GetBalance(ctx context.Context, ledger, address common.Address) (int64, error) {
	var amount int64
	err := s.db.QueryRowContext(ctx, s.dialect.rebind(`
        SELECT amount
        FROM balances
        WHERE ledger = ? AND address = ?
    `), ledger.Hex(), address.Hex()).Scan(&amount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query balance: %w", err)
	}
	return amount, nil
}

// SetBalance stores amount for address; a zero amount removes the row.
func (s *Store) SetBalance(ctx context.Context, ledger, address common.Address, amount int64) error {
	if amount == 0 {
		_, err := s.db.ExecContext(ctx, s.dialect.rebind(`
            DELETE FROM balances WHERE ledger = ? AND address = ?
        `), ledger.Hex(), address.Hex())
		if err != nil {
			return fmt.Errorf("failed to clear balance: %w", err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, s.dialect.rebind(`
        INSERT INTO balances (ledger, address, amount)
        VALUES (?, ?, ?)
        ON CONFLICT (ledger, address) DO UPDATE SET amount = excluded.amount
    `), ledger.Hex(), address.Hex(), amount)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("failed to store balance %d for %s: %w", amount, address.Hex(), ErrConstraintViolation)
		}
		return fmt.Errorf("failed to store balance: %w", err)
	}
	return nil
}
