package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/hance08/splitter/internal/events"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/store"
	"go.uber.org/zap"
)

type LedgerService struct {
	*deps
}

// CreateLedger creates a ledger for owner without recipients.
func (ls *LedgerService) CreateLedger(ctx context.Context, owner common.Address) (*store.Ledger, error) {
	return ls.DeployLedger(ctx, owner, common.Address{}, common.Address{})
}

// DeployLedger creates a ledger for owner. If both recipients are the zero
// address the ledger is left unconfigured; otherwise they are bound at creation.
func (ls *LedgerService) DeployLedger(ctx context.Context, owner, recipientA, recipientB common.Address) (*store.Ledger, error) {
	var header store.Ledger

	err := ls.repo.ExecTx(ctx, func(repo store.Repository) error {
		nonce, err := repo.CountLedgersByOwner(ctx, owner)
		if err != nil {
			return err
		}
		self := splitter.AddressFor(owner, nonce)

		var l *splitter.Ledger
		if recipientA == (common.Address{}) && recipientB == (common.Address{}) {
			l, err = splitter.New(owner, self)
		} else {
			l, err = splitter.Deploy(owner, self, recipientA, recipientB)
		}
		if err != nil {
			return err
		}

		st := l.State()
		header = store.Ledger{
			Address:    st.Address,
			Owner:      st.Owner,
			RecipientA: st.RecipientA,
			RecipientB: st.RecipientB,
			Nonce:      nonce,
			CreatedAt:  ls.now().Unix(),
		}
		if err := repo.CreateLedger(ctx, header); err != nil {
			return err
		}

		if err := ls.journal(ctx, repo, self, store.KindCreated, owner, 0); err != nil {
			return err
		}
		if st.Configured() {
			return ls.journal(ctx, repo, self, store.KindConfigured, owner, 0)
		}
		return nil
	})
	if err != nil {
		ls.log.Warn("ledger creation rejected", zap.String("owner", owner.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	ls.log.Info("ledger created",
		zap.String("ledger", header.Address.Hex()),
		zap.String("owner", owner.Hex()),
		zap.Uint64("nonce", header.Nonce),
	)

	ls.publish(ctx, events.TypeLedgerCreated, header.Address, events.LedgerCreated{
		Owner: owner.Hex(),
		Nonce: header.Nonce,
	})
	if header.RecipientA != (common.Address{}) {
		ls.publish(ctx, events.TypeRecipientsConfigured, header.Address, events.RecipientsConfigured{
			RecipientA: header.RecipientA.Hex(),
			RecipientB: header.RecipientB.Hex(),
		})
	}

	return &header, nil
}

// Configure binds the recipients of an unconfigured ledger. Only the owner
// may do this, and only once.
func (ls *LedgerService) Configure(ctx context.Context, ledger, caller, recipientA, recipientB common.Address) error {
	err := ls.repo.ExecTx(ctx, func(repo store.Repository) error {
		l, _, err := loadLedger(ctx, repo, ledger)
		if err != nil {
			return err
		}

		if err := l.Configure(caller, recipientA, recipientB); err != nil {
			return err
		}

		if err := repo.SetRecipients(ctx, ledger, recipientA, recipientB); err != nil {
			return err
		}
		return ls.journal(ctx, repo, ledger, store.KindConfigured, caller, 0)
	})
	if err != nil {
		ls.log.Warn("configure rejected",
			zap.String("ledger", ledger.Hex()),
			zap.String("caller", caller.Hex()),
			zap.Error(err),
		)
		return err
	}

	ls.log.Info("recipients configured",
		zap.String("ledger", ledger.Hex()),
		zap.String("recipient_a", recipientA.Hex()),
		zap.String("recipient_b", recipientB.Hex()),
	)
	ls.publish(ctx, events.TypeRecipientsConfigured, ledger, events.RecipientsConfigured{
		RecipientA: recipientA.Hex(),
		RecipientB: recipientB.Hex(),
	})
	return nil
}

func (ls *LedgerService) GetLedger(ctx context.Context, ledger common.Address) (*store.Ledger, error) {
	return ls.repo.GetLedger(ctx, ledger)
}

func (ls *LedgerService) ListLedgers(ctx context.Context) ([]*store.Ledger, error) {
	return ls.repo.ListLedgers(ctx)
}

// Recipients returns the ledger's recipients; ok is false if none are bound yet.
func (ls *LedgerService) Recipients(ctx context.Context, ledger common.Address) (recipientA, recipientB common.Address, ok bool, err error) {
	header, err := ls.repo.GetLedger(ctx, ledger)
	if err != nil {
		return common.Address{}, common.Address{}, false, err
	}

	ok = header.RecipientA != (common.Address{}) && header.RecipientB != (common.Address{})
	return header.RecipientA, header.RecipientB, ok, nil
}

func (ls *LedgerService) History(ctx context.Context, ledger common.Address, limit int) ([]*store.JournalEntry, error) {
	if _, err := ls.repo.GetLedger(ctx, ledger); err != nil {
		return nil, err
	}
	return ls.repo.ListJournal(ctx, ledger, limit)
}

func (ls *LedgerService) Payouts(ctx context.Context, ledger common.Address, limit int) ([]*store.Payout, error) {
	if _, err := ls.repo.GetLedger(ctx, ledger); err != nil {
		return nil, err
	}
	return ls.repo.ListPayouts(ctx, ledger, limit)
}

func (d *deps) journal(ctx context.Context, repo store.Repository, ledger common.Address, kind string, actor common.Address, amount int64) error {
	return repo.AppendJournal(ctx, store.JournalEntry{
		ID:        uuid.NewString(),
		Ledger:    ledger,
		Kind:      kind,
		Actor:     actor,
		Amount:    amount,
		CreatedAt: d.now().Unix(),
	})
}
