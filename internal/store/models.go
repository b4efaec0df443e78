package store

import "github.com/ethereum/go-ethereum/common"

const (
	KindCreated    = "created"
	KindConfigured = "configured"
	KindDeposit    = "deposit"
	KindWithdraw   = "withdraw"
)

// Ledger is a persisted ledger header. Unset recipients are zero addresses.
type Ledger struct {
	Address    common.Address
	Owner      common.Address
	RecipientA common.Address
	RecipientB common.Address
	Nonce      uint64
	CreatedAt  int64
}

type JournalEntry struct {
	ID           string
	Ledger       common.Address
	Kind         string
	Actor        common.Address
	Counterparty common.Address
	Amount       int64
	CreatedAt    int64
}

// Payout records value released to a recipient by a withdrawal.
type Payout struct {
	ID        string
	Ledger    common.Address
	Recipient common.Address
	Amount    int64
	CreatedAt int64
}
