package bus

import (
	"context"
	"sync"
	"time"

	"github.com/riskwatch/riskwatch/internal/generator"
	"github.com/riskwatch/riskwatch/internal/models"
	"go.uber.org/zap"
)

// DefaultInterval is the wall-clock period of the simulated feed.
const DefaultInterval = 3 * time.Second

// Producer drives the simulated real-time feed: each tick it generates one
// realtime transaction and, when the transaction is high/critical, an open
// alert linked to it. The transaction event is always published before the
// alert event of the same tick.
type Producer struct {
	bus      *Bus
	gen      *generator.Generator
	interval time.Duration
	logger   *zap.Logger

	nextTxSeq    int
	nextAlertSeq int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewProducer creates a stopped producer. Sequence counters continue from
// wherever the seeded dataset left off.
func NewProducer(b *Bus, gen *generator.Generator, interval time.Duration, nextTxSeq, nextAlertSeq int, logger *zap.Logger) *Producer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Producer{
		bus:          b,
		gen:          gen,
		interval:     interval,
		logger:       logger,
		nextTxSeq:    nextTxSeq,
		nextAlertSeq: nextAlertSeq,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start runs the tick loop until Stop is called or ctx is cancelled.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("producer context cancelled")
				return
			case <-p.stop:
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}()
}

// Stop halts the feed and waits for the loop to exit. After Stop returns no
// further events are published.
func (p *Producer) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

// tick emits one realtime transaction, plus its alert when the risk level
// warrants one.
func (p *Producer) tick() {
	tx := p.gen.Generate(p.nextTxSeq, true)
	p.nextTxSeq++

	var alert *models.Alert
	if tx.RiskLevel.IsElevated() {
		a := models.NewAutoAlert(p.nextAlertSeq, tx)
		p.nextAlertSeq++
		tx.AlertID = a.ID
		alert = &a
	}

	p.bus.Publish(EventNewTransaction, tx)
	if alert != nil {
		p.logger.Info("alert raised",
			zap.String("alert", alert.ID),
			zap.String("transaction", tx.ID),
			zap.String("level", string(tx.RiskLevel)),
		)
		p.bus.Publish(EventNewAlert, *alert)
	}
}
