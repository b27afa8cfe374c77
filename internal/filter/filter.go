// Package filter evaluates a filter specification over a transaction
// collection. The predicate is the AND of independent sub-predicates, each a
// no-op when its field is at its default.
package filter

import (
	"strings"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
)

// MaxResults caps the returned page. The cap is a display concern and is
// part of the documented contract: callers always see at most MaxResults
// rows, never an error.
const MaxResults = 200

// TimeRange narrows transactions to a trailing window.
type TimeRange string

const (
	RangeAll TimeRange = "all"
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
)

func (r TimeRange) window() (time.Duration, bool) {
	switch r {
	case Range24h:
		return 24 * time.Hour, true
	case Range7d:
		return 7 * 24 * time.Hour, true
	case Range30d:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Spec is the combined set of constraints narrowing the transaction set.
// The zero value restricts nothing. Nil amount bounds are unconstrained;
// callers parsing user input should map unparseable bounds to nil.
type Spec struct {
	TimeRange          TimeRange                  `json:"timeRange"`
	RiskLevels         []models.RiskLevel         `json:"riskLevels"`
	Channels           []models.Channel           `json:"channels"`
	Statuses           []models.TransactionStatus `json:"statuses"`
	MinAmount          *float64                   `json:"minAmount"`
	MaxAmount          *float64                   `json:"maxAmount"`
	SourceCountry      string                     `json:"sourceCountry"`
	DestinationCountry string                     `json:"destinationCountry"`
}

// Apply filters the collection, preserving order and leaving the input
// untouched. search is an independent case-insensitive substring match over
// transaction id, customer id and merchant name. The result is truncated to
// MaxResults.
func Apply(txns []models.Transaction, spec Spec, search string) []models.Transaction {
	now := time.Now()
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Transaction, 0, MaxResults)
	for _, tx := range txns {
		if !matches(tx, spec, term, now) {
			continue
		}
		out = append(out, tx)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

func matches(tx models.Transaction, spec Spec, term string, now time.Time) bool {
	if term != "" && !matchesSearch(tx, term) {
		return false
	}

	if window, ok := spec.TimeRange.window(); ok {
		if now.Sub(tx.Timestamp) > window {
			return false
		}
	}

	if len(spec.RiskLevels) > 0 && !containsLevel(spec.RiskLevels, tx.RiskLevel) {
		return false
	}
	if len(spec.Channels) > 0 && !containsChannel(spec.Channels, tx.Channel) {
		return false
	}
	if len(spec.Statuses) > 0 && !containsStatus(spec.Statuses, tx.Status) {
		return false
	}

	if spec.MinAmount != nil && tx.Amount < *spec.MinAmount {
		return false
	}
	if spec.MaxAmount != nil && tx.Amount > *spec.MaxAmount {
		return false
	}

	if spec.SourceCountry != "" && tx.SourceCountry != spec.SourceCountry {
		return false
	}
	if spec.DestinationCountry != "" && tx.DestinationCountry != spec.DestinationCountry {
		return false
	}
	return true
}

func matchesSearch(tx models.Transaction, term string) bool {
	return strings.Contains(strings.ToLower(tx.TransactionID), term) ||
		strings.Contains(strings.ToLower(tx.CustomerID), term) ||
		strings.Contains(strings.ToLower(tx.MerchantName), term)
}

func containsLevel(levels []models.RiskLevel, level models.RiskLevel) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

func containsChannel(channels []models.Channel, channel models.Channel) bool {
	for _, c := range channels {
		if c == channel {
			return true
		}
	}
	return false
}

func containsStatus(statuses []models.TransactionStatus, status models.TransactionStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
