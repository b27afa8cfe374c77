// Package rules serves the monitoring-rule and watchlist reference data.
// Rules can be toggled between active and inactive; nothing here evaluates
// them against transactions.
package rules

import (
	"sync"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

// Service owns the in-memory rule and watchlist collections.
type Service struct {
	mu        sync.RWMutex
	rules     []models.Rule
	watchlist []models.WatchlistItem
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(logger *zap.Logger) *Service {
	now := time.Now()
	day := 24 * time.Hour
	return &Service{
		logger: logger,
		now:    time.Now,
		rules: []models.Rule{
			{ID: "rule-1", Name: "High Value Transaction", Description: "Flags transactions over $10,000.", Condition: "amount > 10000", Action: models.RuleActionFlag, Status: models.RuleActive, LastModified: now.Add(-2 * day)},
			{ID: "rule-2", Name: "Sanctioned Country Block", Description: "Blocks transactions from sanctioned countries.", Condition: "country IN ('IRN', 'PRK')", Action: models.RuleActionBlock, Status: models.RuleActive, LastModified: now.Add(-5 * day)},
			{ID: "rule-3", Name: "Rapid Velocity", Description: "Flags >5 transactions from same customer in 1 hour.", Condition: "COUNT(customerId) > 5 OVER 1h", Action: models.RuleActionFlag, Status: models.RuleInactive, LastModified: now.Add(-10 * day)},
			{ID: "rule-4", Name: "High-Risk Merchant Category", Description: "Flags transactions from gambling or crypto merchants.", Condition: "merchantCategory IN ('Gambling', 'Crypto')", Action: models.RuleActionFlag, Status: models.RuleActive, LastModified: now.Add(-1 * day)},
		},
		watchlist: []models.WatchlistItem{
			{ID: "wl-1", Type: models.WatchCustomerID, Value: "CUST8892", Reason: "Previous fraudulent activity", AddedAt: now.Add(-3 * day)},
			{ID: "wl-2", Type: models.WatchMerchantName, Value: "ShadyDeals.com", Reason: "Reported by multiple users", AddedAt: now.Add(-15 * day)},
			{ID: "wl-3", Type: models.WatchCountry, Value: "Somalia", Reason: "High-risk jurisdiction", AddedAt: now.Add(-30 * day)},
		},
	}
}

// Rules returns a copy of the rule collection.
func (s *Service) Rules() []models.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rule(nil), s.rules...)
}

// Watchlist returns a copy of the watchlist.
func (s *Service) Watchlist() []models.WatchlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WatchlistItem(nil), s.watchlist...)
}

// ToggleRule flips a rule between active and inactive and stamps
// LastModified. Unknown ids return a not-found AppError.
func (s *Service) ToggleRule(id string) (models.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID != id {
			continue
		}
		if s.rules[i].Status == models.RuleActive {
			s.rules[i].Status = models.RuleInactive
		} else {
			s.rules[i].Status = models.RuleActive
		}
		s.rules[i].LastModified = s.now()
		s.logger.Info("rule toggled", zap.String("rule", id), zap.String("status", string(s.rules[i].Status)))
		return s.rules[i], nil
	}
	return models.Rule{}, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "rule not found", nil)
}
