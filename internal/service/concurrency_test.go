package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/store"
	"github.com/hance08/splitter/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workers = 8

// forEachDriver runs fn against sqlite and, when SPLITTER_TEST_POSTGRES_DSN
// is set, against postgres. The postgres database is shared, so each run
// deploys its ledger under a fresh owner and only inspects that ledger.
func forEachDriver(t *testing.T, fn func(t *testing.T, f *fixture, owner common.Address)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, newFixture(t), freshOwner())
	})

	dsn := os.Getenv("SPLITTER_TEST_POSTGRES_DSN")
	if dsn == "" {
		return
	}
	t.Run("postgres", func(t *testing.T) {
		repo, err := store.NewStore("postgres", dsn, migrations.FS)
		require.NoError(t, err)
		fn(t, newFixtureWithRepo(t, repo), freshOwner())
	})
}

func freshOwner() common.Address {
	id := uuid.New()
	return common.BytesToAddress(append([]byte{0xee}, id[:]...))
}

// runParallel starts n calls of fn at once and returns their errors.
func runParallel(n int, fn func() error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}

func TestConcurrentWithdrawPaysOnce(t *testing.T) {
	forEachDriver(t, func(t *testing.T, f *fixture, owner common.Address) {
		ctx := context.Background()
		header, err := f.svc.Ledger.DeployLedger(ctx, owner, alice, bob)
		require.NoError(t, err)
		ledger := header.Address

		_, err = f.svc.Funds.Deposit(ctx, ledger, owner, 10)
		require.NoError(t, err)

		var (
			mu   sync.Mutex
			paid int64
		)
		errs := runParallel(workers, func() error {
			amount, err := f.svc.Funds.Withdraw(ctx, ledger, alice)
			if err == nil {
				mu.Lock()
				paid += amount
				mu.Unlock()
			}
			return err
		})

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.True(t, errors.Is(err, splitter.ErrInsufficientBalance), "unexpected error: %v", err)
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int64(5), paid)

		payouts, err := f.svc.Ledger.Payouts(ctx, ledger, 0)
		require.NoError(t, err)
		require.Len(t, payouts, 1)
		assert.Equal(t, int64(5), payouts[0].Amount)

		balances, err := f.svc.Funds.Balances(ctx, ledger)
		require.NoError(t, err)
		assert.Equal(t, map[common.Address]int64{bob: 5}, balances)
	})
}

func TestConcurrentDepositsConserveValue(t *testing.T) {
	forEachDriver(t, func(t *testing.T, f *fixture, owner common.Address) {
		ctx := context.Background()
		header, err := f.svc.Ledger.DeployLedger(ctx, owner, alice, bob)
		require.NoError(t, err)
		ledger := header.Address

		errs := runParallel(workers, func() error {
			_, err := f.svc.Funds.Deposit(ctx, ledger, owner, 11)
			return err
		})
		for _, err := range errs {
			require.NoError(t, err)
		}

		balances, err := f.svc.Funds.Balances(ctx, ledger)
		require.NoError(t, err)
		assert.Equal(t, map[common.Address]int64{
			alice: 5 * workers,
			bob:   5 * workers,
			owner: 1 * workers,
		}, balances)

		var total int64
		for _, amount := range balances {
			total += amount
		}
		assert.Equal(t, int64(11*workers), total)

		history, err := f.svc.Ledger.History(ctx, ledger, 0)
		require.NoError(t, err)
		assert.Len(t, history, workers+2)
	})
}

func TestConcurrentDepositAndWithdraw(t *testing.T) {
	forEachDriver(t, func(t *testing.T, f *fixture, owner common.Address) {
		ctx := context.Background()
		header, err := f.svc.Ledger.DeployLedger(ctx, owner, alice, bob)
		require.NoError(t, err)
		ledger := header.Address

		_, err = f.svc.Funds.Deposit(ctx, ledger, owner, 4)
		require.NoError(t, err)

		var wg sync.WaitGroup
		var depositErr error
		var withdrawn int64
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, depositErr = f.svc.Funds.Deposit(ctx, ledger, owner, 4)
		}()
		go func() {
			defer wg.Done()
			withdrawn, _ = f.svc.Funds.Withdraw(ctx, ledger, alice)
		}()
		wg.Wait()
		require.NoError(t, depositErr)

		remaining, err := f.svc.Funds.Balance(ctx, ledger, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(4), withdrawn+remaining)
	})
}
