package splitter

import (
	"errors"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = common.HexToAddress("0x1000000000000000000000000000000000000001")
	alice    = common.HexToAddress("0x2000000000000000000000000000000000000002")
	bob      = common.HexToAddress("0x3000000000000000000000000000000000000003")
	carol    = common.HexToAddress("0x4000000000000000000000000000000000000004")
	ledgerID = AddressFor(owner, 0)
)

func deployed(t *testing.T) *Ledger {
	t.Helper()
	l, err := Deploy(owner, ledgerID, alice, bob)
	require.NoError(t, err)
	return l
}

func TestAddressForIsDeterministic(t *testing.T) {
	assert.Equal(t, AddressFor(owner, 0), AddressFor(owner, 0))
	assert.NotEqual(t, AddressFor(owner, 0), AddressFor(owner, 1))
	assert.NotEqual(t, AddressFor(owner, 0), AddressFor(alice, 0))
}

func TestNew(t *testing.T) {
	_, err := New(common.Address{}, ledgerID)
	assert.ErrorIs(t, err, ErrZeroAddress)

	_, err = New(owner, common.Address{})
	assert.ErrorIs(t, err, ErrZeroAddress)

	_, err = New(owner, owner)
	assert.ErrorIs(t, err, ErrSelfOwned)

	l, err := New(owner, ledgerID)
	require.NoError(t, err)
	st := l.State()
	assert.Equal(t, owner, st.Owner)
	assert.Equal(t, ledgerID, st.Address)
	assert.False(t, st.Configured())
	assert.False(t, l.Configured())

	_, _, ok := l.Recipients()
	assert.False(t, ok)
}

func TestConfigureValidPair(t *testing.T) {
	l, err := New(owner, ledgerID)
	require.NoError(t, err)

	require.NoError(t, l.Configure(owner, alice, bob))

	a, b, ok := l.Recipients()
	assert.True(t, ok)
	assert.Equal(t, alice, a)
	assert.Equal(t, bob, b)
}

func TestConfigureRejectsInvalidPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b common.Address
		want error
	}{
		{"zero A", common.Address{}, bob, ErrZeroAddress},
		{"zero B", alice, common.Address{}, ErrZeroAddress},
		{"both zero", common.Address{}, common.Address{}, ErrZeroAddress},
		{"duplicate", alice, alice, ErrDuplicateRecipient},
		{"A is owner", owner, bob, ErrRecipientIsOwner},
		{"B is owner", alice, owner, ErrRecipientIsOwner},
		{"A is ledger", ledgerID, bob, ErrRecipientIsLedger},
		{"B is ledger", alice, ledgerID, ErrRecipientIsLedger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(owner, ledgerID)
			require.NoError(t, err)

			err = l.Configure(owner, tt.a, tt.b)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)

			a, b, ok := l.Recipients()
			assert.False(t, ok)
			assert.Equal(t, common.Address{}, a)
			assert.Equal(t, common.Address{}, b)

			_, err = Deploy(owner, ledgerID, tt.a, tt.b)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigureIsOneTimeAndOwnerOnly(t *testing.T) {
	l, err := New(owner, ledgerID)
	require.NoError(t, err)

	err = l.Configure(alice, bob, carol)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, l.Configured())

	require.NoError(t, l.Configure(owner, alice, bob))

	err = l.Configure(owner, carol, bob)
	assert.ErrorIs(t, err, ErrAlreadyConfigured)

	a, b, _ := l.Recipients()
	assert.Equal(t, alice, a)
	assert.Equal(t, bob, b)
}

func TestDepositBeforeConfigure(t *testing.T) {
	l, err := New(owner, ledgerID)
	require.NoError(t, err)

	_, err = l.Deposit(owner, 10)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, l.Balances())
}

func TestDepositEven(t *testing.T) {
	for _, n := range []int64{2, 4, 10, 1000, math.MaxInt64 - 1} {
		l := deployed(t)

		split, err := l.Deposit(owner, n)
		require.NoError(t, err)

		assert.Equal(t, n/2, split.Half)
		assert.Zero(t, split.Remainder)
		assert.Equal(t, n/2, l.Balance(alice))
		assert.Equal(t, n/2, l.Balance(bob))
		assert.Zero(t, l.Balance(owner))
	}
}

func TestDepositOdd(t *testing.T) {
	for _, n := range []int64{3, 5, 11, 999, math.MaxInt64} {
		l := deployed(t)

		split, err := l.Deposit(owner, n)
		require.NoError(t, err)

		assert.Equal(t, (n-1)/2, l.Balance(alice))
		assert.Equal(t, (n-1)/2, l.Balance(bob))
		assert.Equal(t, int64(1), l.Balance(owner))
		assert.Equal(t, int64(1), split.Remainder)
		assert.Equal(t, n, split.Half*2+split.Remainder)
	}
}

func TestDepositRemainderGoesToSender(t *testing.T) {
	l := deployed(t)

	_, err := l.Deposit(carol, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(3), l.Balance(alice))
	assert.Equal(t, int64(3), l.Balance(bob))
	assert.Equal(t, int64(1), l.Balance(carol))
	assert.Zero(t, l.Balance(owner))
}

func TestDepositFromRecipient(t *testing.T) {
	l := deployed(t)

	_, err := l.Deposit(alice, 9)
	require.NoError(t, err)

	assert.Equal(t, int64(5), l.Balance(alice))
	assert.Equal(t, int64(4), l.Balance(bob))
}

func TestDepositRejectsSmallAmounts(t *testing.T) {
	for _, n := range []int64{1, 0, -1, math.MinInt64} {
		l := deployed(t)

		_, err := l.Deposit(owner, n)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Empty(t, l.Balances())
	}
}

func TestDepositRejectsZeroSender(t *testing.T) {
	l := deployed(t)

	_, err := l.Deposit(common.Address{}, 10)
	assert.ErrorIs(t, err, ErrZeroAddress)
	assert.Empty(t, l.Balances())
}

func TestDepositOverflowIsAtomic(t *testing.T) {
	l, err := Restore(State{
		Owner:      owner,
		Address:    ledgerID,
		RecipientA: alice,
		RecipientB: bob,
		Balances:   map[common.Address]int64{bob: math.MaxInt64 - 1},
	})
	require.NoError(t, err)

	_, err = l.Deposit(owner, 4)
	assert.ErrorIs(t, err, ErrBalanceOverflow)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Zero(t, l.Balance(alice))
	assert.Equal(t, int64(math.MaxInt64-1), l.Balance(bob))
}

func TestDepositConservesValue(t *testing.T) {
	l := deployed(t)

	var total int64
	for n := int64(2); n < 200; n++ {
		_, err := l.Deposit(carol, n)
		require.NoError(t, err)
		total += n
	}

	var sum int64
	for _, b := range l.Balances() {
		sum += b
	}
	assert.Equal(t, total, sum)
}

func TestWithdraw(t *testing.T) {
	l := deployed(t)
	_, err := l.Deposit(owner, 10)
	require.NoError(t, err)

	var released int64
	amount, err := l.Withdraw(alice, func(to common.Address, amount int64) error {
		assert.Equal(t, alice, to)
		released += amount
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), amount)
	assert.Equal(t, int64(5), released)
	assert.Zero(t, l.Balance(alice))
	assert.Equal(t, int64(5), l.Balance(bob))
}

func TestWithdrawZeroBalance(t *testing.T) {
	l := deployed(t)

	called := false
	_, err := l.Withdraw(carol, func(common.Address, int64) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.False(t, called)
}

func TestWithdrawTwice(t *testing.T) {
	l := deployed(t)
	_, err := l.Deposit(owner, 10)
	require.NoError(t, err)

	_, err = l.Withdraw(alice, nil)
	require.NoError(t, err)

	_, err = l.Withdraw(alice, nil)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestWithdrawReentrancy(t *testing.T) {
	l := deployed(t)
	_, err := l.Deposit(owner, 10)
	require.NoError(t, err)

	var released int64
	var nestedErr error
	var release ReleaseFunc
	release = func(to common.Address, amount int64) error {
		released += amount
		assert.Zero(t, l.Balance(to))
		_, nestedErr = l.Withdraw(to, release)
		return nil
	}

	amount, err := l.Withdraw(alice, release)
	require.NoError(t, err)

	assert.Equal(t, int64(5), amount)
	assert.Equal(t, int64(5), released)
	assert.ErrorIs(t, nestedErr, ErrInsufficientBalance)
	assert.Zero(t, l.Balance(alice))
}

func TestWithdrawReleaseFailureRestoresBalance(t *testing.T) {
	l := deployed(t)
	_, err := l.Deposit(owner, 10)
	require.NoError(t, err)

	boom := errors.New("transfer failed")
	_, err = l.Withdraw(bob, func(common.Address, int64) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(5), l.Balance(bob))
}

func TestReadsAreIdempotent(t *testing.T) {
	l := deployed(t)
	_, err := l.Deposit(owner, 11)
	require.NoError(t, err)

	first := l.State()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, l.State())
		assert.Equal(t, int64(5), l.Balance(alice))
	}
}

func TestScenarios(t *testing.T) {
	t.Run("deposit 10 then withdraw", func(t *testing.T) {
		l := deployed(t)

		_, err := l.Deposit(owner, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(5), l.Balance(alice))
		assert.Equal(t, int64(5), l.Balance(bob))

		_, err = l.Withdraw(alice, nil)
		require.NoError(t, err)
		assert.Zero(t, l.Balance(alice))
	})

	t.Run("deposit 11", func(t *testing.T) {
		l := deployed(t)

		_, err := l.Deposit(owner, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(5), l.Balance(alice))
		assert.Equal(t, int64(5), l.Balance(bob))
		assert.Equal(t, int64(1), l.Balance(owner))
	})
}

func TestRestore(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		l, err := Restore(State{Owner: owner, Address: ledgerID})
		require.NoError(t, err)
		assert.False(t, l.Configured())
	})

	t.Run("round trip", func(t *testing.T) {
		l := deployed(t)
		_, err := l.Deposit(carol, 21)
		require.NoError(t, err)

		restored, err := Restore(l.State())
		require.NoError(t, err)
		assert.Equal(t, l.State(), restored.State())
	})

	t.Run("one recipient", func(t *testing.T) {
		_, err := Restore(State{Owner: owner, Address: ledgerID, RecipientA: alice})
		assert.ErrorIs(t, err, ErrZeroAddress)
	})

	t.Run("invalid recipients", func(t *testing.T) {
		_, err := Restore(State{Owner: owner, Address: ledgerID, RecipientA: owner, RecipientB: bob})
		assert.ErrorIs(t, err, ErrRecipientIsOwner)
	})

	t.Run("negative balance", func(t *testing.T) {
		_, err := Restore(State{
			Owner:    owner,
			Address:  ledgerID,
			Balances: map[common.Address]int64{alice: -1},
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("zero balances dropped", func(t *testing.T) {
		l, err := Restore(State{
			Owner:    owner,
			Address:  ledgerID,
			Balances: map[common.Address]int64{alice: 0},
		})
		require.NoError(t, err)
		assert.Empty(t, l.Balances())
	})
}
