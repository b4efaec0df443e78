package splitter

import (
	"fmt"
	"math"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MinDeposit is the smallest deposit that gives each recipient at least one unit.
const MinDeposit int64 = 2

// ReleaseFunc hands withdrawn value to its owner. It runs after the balance
// has been zeroed and without the ledger lock held, so it may call back into
// the ledger.
type ReleaseFunc func(to common.Address, amount int64) error

// State is the durable form of a ledger. A ledger without recipients has
// both recipient fields set to the zero address.
type State struct {
	Owner      common.Address
	Address    common.Address
	RecipientA common.Address
	RecipientB common.Address
	Balances   map[common.Address]int64
}

// Configured reports whether both recipients are bound.
func (s State) Configured() bool {
	return s.RecipientA != (common.Address{}) && s.RecipientB != (common.Address{})
}

// Split describes how a single deposit was credited.
type Split struct {
	Sender    common.Address
	Amount    int64
	Half      int64
	Remainder int64
}

// Ledger splits deposits between two recipients and tracks withdrawable
// balances. Every operation either applies all of its changes or none.
type Ledger struct {
	mu sync.Mutex

	owner      common.Address
	self       common.Address
	recipientA common.Address
	recipientB common.Address
	configured bool

	balances map[common.Address]int64
}

// New creates a ledger without recipients. Deposits are rejected until the
// owner calls Configure.
func New(owner, self common.Address) (*Ledger, error) {
	if owner == (common.Address{}) {
		return nil, fmt.Errorf("owner: %w", ErrZeroAddress)
	}
	if self == (common.Address{}) {
		return nil, fmt.Errorf("ledger address: %w", ErrZeroAddress)
	}
	if owner == self {
		return nil, ErrSelfOwned
	}

	return &Ledger{
		owner:    owner,
		self:     self,
		balances: make(map[common.Address]int64),
	}, nil
}

// Deploy creates a ledger and binds its recipients in one step.
func Deploy(owner, self, recipientA, recipientB common.Address) (*Ledger, error) {
	l, err := New(owner, self)
	if err != nil {
		return nil, err
	}
	if err := l.Configure(owner, recipientA, recipientB); err != nil {
		return nil, err
	}
	return l, nil
}

// Restore rebuilds a ledger from persisted state, re-checking every invariant.
func Restore(s State) (*Ledger, error) {
	l, err := New(s.Owner, s.Address)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}

	zeroA := s.RecipientA == (common.Address{})
	zeroB := s.RecipientB == (common.Address{})
	switch {
	case zeroA && zeroB:
	case zeroA || zeroB:
		return nil, fmt.Errorf("restore: only one recipient set: %w", ErrZeroAddress)
	default:
		if err := l.checkRecipients(s.RecipientA, s.RecipientB); err != nil {
			return nil, fmt.Errorf("restore: %w", err)
		}
		l.recipientA, l.recipientB = s.RecipientA, s.RecipientB
		l.configured = true
	}

	for addr, amount := range s.Balances {
		if amount < 0 {
			return nil, fmt.Errorf("restore: negative balance %d for %s: %w", amount, addr.Hex(), ErrInvalidAmount)
		}
		if amount > 0 {
			l.balances[addr] = amount
		}
	}

	return l, nil
}

// Configure binds the two recipients. Only the owner may call it, and only once.
func (l *Ledger) Configure(caller, recipientA, recipientB common.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.configured {
		return ErrAlreadyConfigured
	}
	if caller != l.owner {
		return ErrNotOwner
	}
	if err := l.checkRecipients(recipientA, recipientB); err != nil {
		return err
	}

	l.recipientA = recipientA
	l.recipientB = recipientB
	l.configured = true
	return nil
}

func (l *Ledger) checkRecipients(recipientA, recipientB common.Address) error {
	named := []struct {
		name string
		addr common.Address
	}{
		{"recipient A", recipientA},
		{"recipient B", recipientB},
	}

	for _, r := range named {
		if r.addr == (common.Address{}) {
			return fmt.Errorf("%s: %w", r.name, ErrZeroAddress)
		}
		if r.addr == l.owner {
			return fmt.Errorf("%s: %w", r.name, ErrRecipientIsOwner)
		}
		if r.addr == l.self {
			return fmt.Errorf("%s: %w", r.name, ErrRecipientIsLedger)
		}
	}

	if recipientA == recipientB {
		return ErrDuplicateRecipient
	}
	return nil
}

// Deposit credits half of amount (rounded down) to each recipient and the
// odd unit, if any, to the sender.
func (l *Ledger) Deposit(sender common.Address, amount int64) (Split, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.configured {
		return Split{}, ErrNotConfigured
	}
	if amount < MinDeposit {
		return Split{}, fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidAmount, amount, MinDeposit)
	}
	if sender == (common.Address{}) {
		return Split{}, fmt.Errorf("sender: %w", ErrZeroAddress)
	}

	half := amount / 2
	split := Split{
		Sender:    sender,
		Amount:    amount,
		Half:      half,
		Remainder: amount - 2*half,
	}

	credits := map[common.Address]int64{}
	credits[l.recipientA] += half
	credits[l.recipientB] += half
	if split.Remainder > 0 {
		credits[sender] += split.Remainder
	}

	next := make(map[common.Address]int64, len(credits))
	for addr, credit := range credits {
		current := l.balances[addr]
		if current > math.MaxInt64-credit {
			return Split{}, fmt.Errorf("credit %s: %w", addr.Hex(), ErrBalanceOverflow)
		}
		next[addr] = current + credit
	}
	for addr, balance := range next {
		l.balances[addr] = balance
	}

	return split, nil
}

// Withdraw zeroes the caller's balance and then passes the amount to release.
// If release fails, the amount is credited back and the error is returned.
func (l *Ledger) Withdraw(caller common.Address, release ReleaseFunc) (int64, error) {
	l.mu.Lock()
	amount := l.balances[caller]
	if amount <= 0 {
		l.mu.Unlock()
		return 0, ErrInsufficientBalance
	}
	delete(l.balances, caller)
	l.mu.Unlock()

	if release == nil {
		return amount, nil
	}

	if err := release(caller, amount); err != nil {
		l.mu.Lock()
		l.balances[caller] += amount
		l.mu.Unlock()
		return 0, fmt.Errorf("release %d to %s: %w", amount, caller.Hex(), err)
	}

	return amount, nil
}

// Recipients returns the bound recipients; ok is false before Configure.
func (l *Ledger) Recipients() (recipientA, recipientB common.Address, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recipientA, l.recipientB, l.configured
}

// Balance returns the withdrawable balance of addr, zero if unknown.
func (l *Ledger) Balance(addr common.Address) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[addr]
}

// Balances returns a copy of every non-zero balance.
func (l *Ledger) Balances() map[common.Address]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[common.Address]int64, len(l.balances))
	for addr, amount := range l.balances {
		out[addr] = amount
	}
	return out
}

func (l *Ledger) Configured() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.configured
}

// State returns a snapshot suitable for persisting.
func (l *Ledger) State() State {
	a, b, _ := l.Recipients()
	return State{
		Owner:      l.owner,
		Address:    l.self,
		RecipientA: a,
		RecipientB: b,
		Balances:   l.Balances(),
	}
}

// AddressFor derives the identity of the nonce-th ledger created by owner.
func AddressFor(owner common.Address, nonce uint64) common.Address {
	return crypto.CreateAddress(owner, nonce)
}
