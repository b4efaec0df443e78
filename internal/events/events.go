package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeLedgerCreated        = "ledger_created"
	TypeRecipientsConfigured = "recipients_configured"
	TypeFundsSplit           = "funds_split"
	TypeFundsWithdrawn       = "funds_withdrawn"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// Envelope wraps every published event.
type Envelope struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	Ledger     string    `json:"ledger"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func NewEnvelope(eventType, ledger string, payload any, at time.Time) Envelope {
	return Envelope{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Ledger:     ledger,
		OccurredAt: at.UTC(),
		Payload:    payload,
	}
}

type LedgerCreated struct {
	Owner string `json:"owner"`
	Nonce uint64 `json:"nonce"`
}

type RecipientsConfigured struct {
	RecipientA string `json:"recipient_a"`
	RecipientB string `json:"recipient_b"`
}

type FundsSplit struct {
	Sender    string `json:"sender"`
	Amount    int64  `json:"amount"`
	Half      int64  `json:"half"`
	Remainder int64  `json:"remainder"`
}

type FundsWithdrawn struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	PayoutID  string `json:"payout_id"`
}

// NopPublisher discards events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
