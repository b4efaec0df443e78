package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/hance08/splitter/internal/store"
)

// Releaser moves withdrawn value out of the ledger. It runs inside the
// withdrawal's database transaction, after the balance has been zeroed;
// returning an error rolls the withdrawal back.
type Releaser interface {
	Release(ctx context.Context, repo store.Repository, ledger, to common.Address, amount int64) (string, error)
}

// PayoutRecorder releases value by recording a payout for the external
// transfer layer to settle.
type PayoutRecorder struct {
	now func() time.Time
}

func NewPayoutRecorder(now func() time.Time) *PayoutRecorder {
	if now == nil {
		now = time.Now
	}
	return &PayoutRecorder{now: now}
}

func (p *PayoutRecorder) Release(ctx context.Context, repo store.Repository, ledger, to common.Address, amount int64) (string, error) {
	payout := store.Payout{
		ID:        uuid.NewString(),
		Ledger:    ledger,
		Recipient: to,
		Amount:    amount,
		CreatedAt: p.now().Unix(),
	}
	if err := repo.CreatePayout(ctx, payout); err != nil {
		return "", err
	}
	return payout.ID, nil
}
