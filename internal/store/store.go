// Package store owns the authoritative transaction and alert collections and
// exposes the only sanctioned mutation operations. All access goes through a
// read-write mutex so a reader never observes a collection mid-update.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskwatch/riskwatch/internal/bus"
	"github.com/riskwatch/riskwatch/internal/generator"
	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/riskwatch/riskwatch/internal/session"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

// DefaultSeedCount is how many backfill transactions the store starts with.
const DefaultSeedCount = 200

// fallbackActor is used on manual-alert timelines when nobody is logged in.
const fallbackActor = "Analyst"

// Credentials maps lowercase email to the user record behind it.
type Credentials map[string]models.User

// DefaultUsers is the fixed credential table of the demo deployment.
func DefaultUsers() Credentials {
	now := time.Now()
	return Credentials{
		"analyst@riskwatch.com": {ID: "user-1", Name: "Alex Ray", Email: "analyst@riskwatch.com", Role: models.RoleAnalyst, Status: models.UserActive, CreatedAt: now},
		"admin@riskwatch.com":   {ID: "user-2", Name: "Jane Doe", Email: "admin@riskwatch.com", Role: models.RoleAdmin, Status: models.UserActive, CreatedAt: now},
	}
}

// State is the read-only snapshot handed to the view layer.
type State struct {
	Transactions []models.Transaction `json:"transactions"`
	Alerts       []models.Alert       `json:"alerts"`
	KPIs         models.KpiData       `json:"kpis"`
	CurrentUser  *models.User         `json:"currentUser"`
}

// Config tunes store construction. A zero SeedCount means DefaultSeedCount;
// a negative one disables seeding entirely.
type Config struct {
	SeedCount  int
	LoginDelay time.Duration // simulated API latency, zero in tests
	Users      Credentials
}

type Store struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	alerts       []models.Alert
	user         *models.User

	users      Credentials
	sessions   session.Store
	loginDelay time.Duration
	logger     *zap.Logger
	now        func() time.Time

	subs []bus.Subscription
	b    *bus.Bus
}

// New builds a store seeded with cfg.SeedCount backfill transactions plus an
// open alert for every high/critical one, then restores a previously
// authenticated user from the session store. A malformed persisted session is
// treated as absent.
func New(ctx context.Context, cfg Config, sessions session.Store, gen *generator.Generator, logger *zap.Logger) *Store {
	if cfg.SeedCount == 0 {
		cfg.SeedCount = DefaultSeedCount
	}
	if cfg.Users == nil {
		cfg.Users = DefaultUsers()
	}

	s := &Store{
		users:      cfg.Users,
		sessions:   sessions,
		loginDelay: cfg.LoginDelay,
		logger:     logger,
		now:        time.Now,
	}

	for i := 1; i <= cfg.SeedCount; i++ {
		tx := gen.Generate(i, false)
		if tx.RiskLevel.IsElevated() {
			alert := models.NewAutoAlert(len(s.alerts)+1, tx)
			tx.AlertID = alert.ID
			s.alerts = append(s.alerts, alert)
		}
		s.transactions = append(s.transactions, tx)
	}

	user, err := sessions.Load(ctx)
	if err != nil {
		logger.Warn("could not read persisted session", zap.Error(err))
	} else if user != nil {
		s.user = user
		logger.Info("restored session", zap.String("user", user.ID))
	}

	return s
}

// NextSequences reports where the producer should continue the transaction
// and alert counters.
func (s *Store) NextSequences() (txSeq, alertSeq int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions) + 1, len(s.alerts) + 1
}

// Attach subscribes the store to the feed. Must be called before the
// producer starts and balanced with Detach on teardown.
func (s *Store) Attach(b *bus.Bus) {
	s.b = b
	s.subs = append(s.subs,
		b.Subscribe(bus.EventNewTransaction, s.onNewTransaction),
		b.Subscribe(bus.EventNewAlert, s.onNewAlert),
	)
}

// Detach removes the store's subscriptions so a torn-down store can no
// longer be reached by the feed.
func (s *Store) Detach() {
	for _, sub := range s.subs {
		s.b.Unsubscribe(sub)
	}
	s.subs = nil
}

func (s *Store) onNewTransaction(payload interface{}) {
	tx, ok := payload.(models.Transaction)
	if !ok {
		s.logger.Error("unexpected payload on transaction feed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
}

func (s *Store) onNewAlert(payload interface{}) {
	alert, ok := payload.(models.Alert)
	if !ok {
		s.logger.Error("unexpected payload on alert feed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append([]models.Alert{alert}, s.alerts...)
}

// Login simulates the credential check of the upstream auth API: an optional
// fixed delay, then a case-insensitive lookup in the fixed credential table.
// On success the user is persisted to the session store.
func (s *Store) Login(ctx context.Context, email string) (models.User, error) {
	if s.loginDelay > 0 {
		select {
		case <-ctx.Done():
			return models.User{}, ctx.Err()
		case <-time.After(s.loginDelay):
		}
	}

	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.User{}, pkg.NewAppError(pkg.ErrInvalidCredentialsCode, "invalid credentials", nil)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, user); err != nil {
		s.logger.Warn("could not persist session", zap.Error(err))
	}
	s.logger.Info("user logged in", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Logout clears the current user and the durable session entry.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Warn("could not clear session", zap.Error(err))
	}
}

// CreateManualAlert attaches an analyst-raised alert to the transaction. It
// is a silent no-op when the transaction does not exist or already carries an
// alert, which keeps the at-most-one-alert invariant and makes the call
// idempotent. The created alert and true are returned on success.
func (s *Store) CreateManualAlert(transactionID string) (models.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.transactions {
		if s.transactions[i].ID == transactionID {
			idx = i
			break
		}
	}
	if idx < 0 || s.transactions[idx].AlertID != "" {
		return models.Alert{}, false
	}

	tx := &s.transactions[idx]
	now := s.now()
	seq := len(s.alerts) + 1

	actor := fallbackActor
	if s.user != nil {
		actor = s.user.Name
	}

	alert := models.Alert{
		ID:             fmt.Sprintf("alert-%d", seq),
		AlertID:        fmt.Sprintf("A%d%d", now.UnixMilli(), seq),
		TransactionRef: tx.ID,
		Title:          fmt.Sprintf("Manual Alert: %s", tx.MerchantName),
		Description:    fmt.Sprintf("Alert manually created for transaction of %.2f %s.", tx.Amount, tx.Currency),
		RiskScore:      tx.RiskScore,
		RiskLevel:      tx.RiskLevel,
		Status:         models.AlertOpen,
		Tags:           append([]string{"manual_review"}, tx.TriggeredRules...),
		CreatedAt:      now,
		Timeline: []models.TimelineEntry{
			{At: tx.Timestamp, Actor: models.ActorSystem, Action: "Transaction Occurred"},
			{At: now, Actor: actor, Action: "Manual Alert Created"},
		},
	}

	tx.AlertID = alert.ID
	tx.Status = models.TxStatusUnderReview
	s.alerts = append([]models.Alert{alert}, s.alerts...)

	s.logger.Info("manual alert created",
		zap.String("alert", alert.ID),
		zap.String("transaction", tx.ID),
		zap.String("actor", actor),
	)
	return alert, true
}

// Snapshot returns copies of both collections, the derived KPIs and the
// current user. Record-internal slices are shared and must be treated as
// read-only by callers.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Transactions: append([]models.Transaction(nil), s.transactions...),
		Alerts:       append([]models.Alert(nil), s.alerts...),
		KPIs:         s.kpisLocked(),
		CurrentUser:  s.currentUserLocked(),
	}
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Alerts returns a copy of the alert collection.
func (s *Store) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Alert(nil), s.alerts...)
}

// AlertsByStatus returns up to limit alerts with the given lifecycle status;
// an empty status means all. limit<=0 means no cap.
func (s *Store) AlertsByStatus(status models.AlertStatus, limit int) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Alert
	for _, a := range s.alerts {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserLocked()
}

// KPIs derives the headline figures from the current collections.
func (s *Store) KPIs() models.KpiData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kpisLocked()
}

func (s *Store) currentUserLocked() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) kpisLocked() models.KpiData {
	cutoff := s.now().Add(-24 * time.Hour)

	var kpi models.KpiData
	var scoreSum int
	for _, tx := range s.transactions {
		if !tx.Timestamp.After(cutoff) {
			continue
		}
		kpi.TotalTransactions++
		scoreSum += tx.RiskScore
		if tx.RiskLevel.IsElevated() {
			kpi.HighRiskTransactions++
		}
	}
	if kpi.TotalTransactions > 0 {
		kpi.AvgRiskScore = int(float64(scoreSum)/float64(kpi.TotalTransactions) + 0.5)
	}

	for _, a := range s.alerts {
		if a.Status == models.AlertOpen || a.Status == models.AlertInProgress {
			kpi.OpenAlerts++
		}
	}
	return kpi
}
