package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func (s *Store) CreateLedger(ctx context.Context, ledger Ledger) error {
	_, err := s.db.ExecContext(ctx, s.dialect.rebind(`
        INSERT INTO ledgers (address, owner, recipient_a, recipient_b, nonce, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `),
		ledger.Address.Hex(), ledger.Owner.Hex(),
		nullAddress(ledger.RecipientA), nullAddress(ledger.RecipientB),
		int64(ledger.Nonce), ledger.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create ledger %s: %w", ledger.Address.Hex(), ErrLedgerExists)
		}
		return fmt.Errorf("failed to insert ledger: %w", err)
	}
	return nil
}

func (s *Store) GetLedger(ctx context.Context, address common.Address) (*Ledger, error) {
	return s.getLedger(ctx, address, "")
}

// LockLedger reads the ledger and holds its row lock until the surrounding
// transaction ends, so concurrent operations on one ledger run one at a time.
func (s *Store) LockLedger(ctx context.Context, address common.Address) (*Ledger, error) {
	if _, ok := s.db.(*sql.Tx); !ok {
		return nil, fmt.Errorf("lock ledger %s: not in a transaction", address.Hex())
	}
	return s.getLedger(ctx, address, s.dialect.lockClause)
}

func (s *Store) getLedger(ctx context.Context, address common.Address, lockClause string) (*Ledger, error) {
	row := s.db.QueryRowContext(ctx, s.dialect.rebind(`
        SELECT address, owner, recipient_a, recipient_b, nonce, created_at
        FROM ledgers
        WHERE address = ?`+lockClause), address.Hex())

	ledger, err := scanLedger(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ledger %s: %w", address.Hex(), ErrLedgerNotFound)
		}
		return nil, fmt.Errorf("failed to query ledger %s: %w", address.Hex(), err)
	}
	return ledger, nil
}

func (s *Store) ListLedgers(ctx context.Context) ([]*Ledger, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT address, owner, recipient_a, recipient_b, nonce, created_at
        FROM ledgers
        ORDER BY created_at, owner, nonce
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledgers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ledgers []*Ledger
	for rows.Next() {
		ledger, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}

	return ledgers, rows.Err()
}

func (s *Store) CountLedgersByOwner(ctx context.Context, owner common.Address) (uint64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, s.dialect.rebind(`
        SELECT COUNT(*) FROM ledgers WHERE owner = ?
    `), owner.Hex()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ledgers: %w", err)
	}
	return uint64(count), nil
}

// SetRecipients binds the recipients of a ledger that has none yet.
func (s *Store) SetRecipients(ctx context.Context, ledger, recipientA, recipientB common.Address) error {
	res, err := s.db.ExecContext(ctx, s.dialect.rebind(`
        UPDATE ledgers
        SET recipient_a = ?, recipient_b = ?
        WHERE address = ? AND recipient_a IS NULL AND recipient_b IS NULL
    `), recipientA.Hex(), recipientB.Hex(), ledger.Hex())
	if err != nil {
		return fmt.Errorf("failed to update recipients: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated recipients: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ledger %s has no unset recipients: %w", ledger.Hex(), ErrConstraintViolation)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedger(row rowScanner) (*Ledger, error) {
	var (
		address, owner         string
		recipientA, recipientB sql.NullString
		nonce                  int64
		ledger                 Ledger
	)

	err := row.Scan(&address, &owner, &recipientA, &recipientB, &nonce, &ledger.CreatedAt)
	if err != nil {
		return nil, err
	}

	ledger.Address = common.HexToAddress(address)
	ledger.Owner = common.HexToAddress(owner)
	if recipientA.Valid {
		ledger.RecipientA = common.HexToAddress(recipientA.String)
	}
	if recipientB.Valid {
		ledger.RecipientB = common.HexToAddress(recipientB.String)
	}
	ledger.Nonce = uint64(nonce)

	return &ledger, nil
}

func nullAddress(addr common.Address) sql.NullString {
	if addr == (common.Address{}) {
		return sql.NullString{}
	}
	return sql.NullString{String: addr.Hex(), Valid: true}
}
