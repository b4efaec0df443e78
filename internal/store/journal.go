package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const defaultListLimit = 100

func (s *Store) AppendJournal(ctx context.Context, entry JournalEntry) error {
	_, err := s.db.ExecContext(ctx, s.dialect.rebind(`
        INSERT INTO journal (id, ledger, kind, actor, counterparty, amount, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `),
		entry.ID, entry.Ledger.Hex(), entry.Kind, entry.Actor.Hex(),
		nullAddress(entry.Counterparty), entry.Amount, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// ListJournal returns the newest entries of a ledger first.
func (s *Store) ListJournal(ctx context.Context, ledger common.Address, limit int) ([]*JournalEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(`
        SELECT id, ledger, kind, actor, counterparty, amount, created_at
        FROM journal
        WHERE ledger = ?
        ORDER BY seq DESC
        LIMIT ?
    `), ledger.Hex(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*JournalEntry
	for rows.Next() {
		var (
			entry            JournalEntry
			ledgerHex, actor string
			counterparty     sql.NullString
		)
		err := rows.Scan(
			&entry.ID, &ledgerHex, &entry.Kind, &actor,
			&counterparty, &entry.Amount, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		entry.Ledger = common.HexToAddress(ledgerHex)
		entry.Actor = common.HexToAddress(actor)
		if counterparty.Valid {
			entry.Counterparty = common.HexToAddress(counterparty.String)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal: %w", err)
	}
	return entries, nil
}

func (s *Store) CreatePayout(ctx context.Context, payout Payout) error {
	_, err := s.db.ExecContext(ctx, s.dialect.rebind(`
        INSERT INTO payouts (id, ledger, recipient, amount, created_at)
        VALUES (?, ?, ?, ?, ?)
    `), payout.ID, payout.Ledger.Hex(), payout.Recipient.Hex(), payout.Amount, payout.CreatedAt)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("failed to record payout of %d: %w", payout.Amount, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert payout: %w", err)
	}
	return nil
}

func (s *Store) ListPayouts(ctx context.Context, ledger common.Address, limit int) ([]*Payout, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(`
        SELECT id, ledger, recipient, amount, created_at
        FROM payouts
        WHERE ledger = ?
        ORDER BY seq DESC
        LIMIT ?
    `), ledger.Hex(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query payouts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var payouts []*Payout
	for rows.Next() {
		var (
			payout               Payout
			ledgerHex, recipient string
		)
		if err := rows.Scan(&payout.ID, &ledgerHex, &recipient, &payout.Amount, &payout.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payout: %w", err)
		}
		payout.Ledger = common.HexToAddress(ledgerHex)
		payout.Recipient = common.HexToAddress(recipient)
		payouts = append(payouts, &payout)
	}

	return payouts, rows.Err()
}
