package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/events"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/store"
	"go.uber.org/zap"
)

type FundsService struct {
	*deps
}

// Deposit splits amount between the ledger's recipients.
func (fs *FundsService) Deposit(ctx context.Context, ledger, sender common.Address, amount int64) (splitter.Split, error) {
	var split splitter.Split

	err := fs.repo.ExecTx(ctx, func(repo store.Repository) error {
		l, _, err := loadLedger(ctx, repo, ledger)
		if err != nil {
			return err
		}

		before := l.Balances()
		split, err = l.Deposit(sender, amount)
		if err != nil {
			return err
		}

		if err := saveBalances(ctx, repo, ledger, before, l.Balances()); err != nil {
			return err
		}
		return fs.journal(ctx, repo, ledger, store.KindDeposit, sender, amount)
	})
	if err != nil {
		fs.log.Warn("deposit rejected",
			zap.String("ledger", ledger.Hex()),
			zap.String("sender", sender.Hex()),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		return splitter.Split{}, err
	}

	fs.log.Info("deposit split",
		zap.String("ledger", ledger.Hex()),
		zap.String("sender", sender.Hex()),
		zap.Int64("amount", amount),
		zap.Int64("half", split.Half),
		zap.Int64("remainder", split.Remainder),
	)
	fs.publish(ctx, events.TypeFundsSplit, ledger, events.FundsSplit{
		Sender:    sender.Hex(),
		Amount:    split.Amount,
		Half:      split.Half,
		Remainder: split.Remainder,
	})

	return split, nil
}

// Withdraw pays out the caller's whole balance. The zeroed balance is
// written before the releaser runs; both happen in one transaction.
func (fs *FundsService) Withdraw(ctx context.Context, ledger, caller common.Address) (int64, error) {
	var (
		amount   int64
		payoutID string
	)

	err := fs.repo.ExecTx(ctx, func(repo store.Repository) error {
		l, _, err := loadLedger(ctx, repo, ledger)
		if err != nil {
			return err
		}

		before := l.Balances()
		amount, err = l.Withdraw(caller, func(to common.Address, value int64) error {
			if err := saveBalances(ctx, repo, ledger, before, l.Balances()); err != nil {
				return err
			}
			id, err := fs.releaser.Release(ctx, repo, ledger, to, value)
			if err != nil {
				return err
			}
			payoutID = id
			return nil
		})
		if err != nil {
			return err
		}

		return fs.journal(ctx, repo, ledger, store.KindWithdraw, caller, amount)
	})
	if err != nil {
		fs.log.Warn("withdraw rejected",
			zap.String("ledger", ledger.Hex()),
			zap.String("caller", caller.Hex()),
			zap.Error(err),
		)
		return 0, err
	}

	fs.log.Info("withdrawal released",
		zap.String("ledger", ledger.Hex()),
		zap.String("recipient", caller.Hex()),
		zap.Int64("amount", amount),
		zap.String("payout_id", payoutID),
	)
	fs.publish(ctx, events.TypeFundsWithdrawn, ledger, events.FundsWithdrawn{
		Recipient: caller.Hex(),
		Amount:    amount,
		PayoutID:  payoutID,
	})

	return amount, nil
}

// Balance returns the withdrawable balance of address, zero if it has none.
func (fs *FundsService) Balance(ctx context.Context, ledger, address common.Address) (int64, error) {
	if _, err := fs.repo.GetLedger(ctx, ledger); err != nil {
		return 0, err
	}
	return fs.repo.GetBalance(ctx, ledger, address)
}

func (fs *FundsService) Balances(ctx context.Context, ledger common.Address) (map[common.Address]int64, error) {
	if _, err := fs.repo.GetLedger(ctx, ledger); err != nil {
		return nil, err
	}
	return fs.repo.GetBalances(ctx, ledger)
}
