package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/config"
	"github.com/hance08/splitter/internal/events"
	"github.com/hance08/splitter/internal/store"
	"go.uber.org/zap"
)

type Service struct {
	Ledger *LedgerService
	Funds  *FundsService
	Config *config.Config
}

// Option customizes the dependencies shared by the sub-services.
type Option func(*deps)

func WithPublisher(p events.Publisher) Option {
	return func(d *deps) { d.publisher = p }
}

func WithLogger(log *zap.Logger) Option {
	return func(d *deps) { d.log = log }
}

func WithReleaser(r Releaser) Option {
	return func(d *deps) { d.releaser = r }
}

func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

func NewService(repo store.Repository, cfg *config.Config, opts ...Option) *Service {
	if cfg == nil {
		cfg = config.NewDefault()
	}

	d := &deps{
		repo:      repo,
		cfg:       cfg,
		publisher: events.NopPublisher{},
		log:       zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.releaser == nil {
		d.releaser = NewPayoutRecorder(d.now)
	}

	return &Service{
		Ledger: &LedgerService{deps: d},
		Funds:  &FundsService{deps: d},
		Config: cfg,
	}
}

type deps struct {
	repo      store.Repository
	cfg       *config.Config
	publisher events.Publisher
	releaser  Releaser
	log       *zap.Logger
	now       func() time.Time
}

// publish sends an event after its state change has been committed. A
// failure is logged and does not undo the change.
func (d *deps) publish(ctx context.Context, eventType string, ledger common.Address, payload any) {
	env := events.NewEnvelope(eventType, ledger.Hex(), payload, d.now())
	if err := d.publisher.Publish(ctx, d.cfg.Events.Kafka.Topic, env); err != nil {
		d.log.Warn("failed to publish event",
			zap.String("type", eventType),
			zap.String("ledger", ledger.Hex()),
			zap.String("event_id", env.EventID),
			zap.Error(err),
		)
	}
}
