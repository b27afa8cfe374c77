package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := NewWithClock(rand.New(rand.NewSource(42)), fixedClock())
	b := NewWithClock(rand.New(rand.NewSource(42)), fixedClock())

	for i := 1; i <= 20; i++ {
		assert.Equal(t, a.Generate(i, false), b.Generate(i, false))
	}
}

func TestGenerateFieldInvariants(t *testing.T) {
	g := NewWithClock(rand.New(rand.NewSource(7)), fixedClock())
	now := fixedClock()()

	for i := 1; i <= 500; i++ {
		tx := g.Generate(i, false)

		assert.GreaterOrEqual(t, tx.Amount, 0.0)
		assert.Less(t, tx.Amount, 5000.0)
		assert.GreaterOrEqual(t, tx.RiskScore, 0)
		assert.LessOrEqual(t, tx.RiskScore, 100)
		assert.Equal(t, models.RiskLevelForScore(tx.RiskScore), tx.RiskLevel)

		if tx.RiskLevel.IsElevated() {
			assert.Equal(t, models.TxStatusFlagged, tx.Status)
		} else {
			assert.Equal(t, models.TxStatusNormal, tx.Status)
		}

		assert.Contains(t, Countries, tx.SourceCountry)
		assert.Contains(t, Countries, tx.DestinationCountry)
		assert.Contains(t, Merchants, tx.MerchantName)
		assert.Contains(t, MerchantCategories, tx.MerchantCategory)

		// Backfill timestamps land within the last 30 days.
		require.False(t, tx.Timestamp.After(now))
		require.False(t, tx.Timestamp.Before(now.Add(-30*24*time.Hour)))
	}
}

func TestGenerateRealtimeTimestamp(t *testing.T) {
	g := NewWithClock(rand.New(rand.NewSource(1)), fixedClock())
	tx := g.Generate(1, true)
	assert.Equal(t, fixedClock()(), tx.Timestamp)
}

func TestTriggeredRules(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		src, dst  string
		merchant  string
		riskScore int
		geoCoin   bool
		want      []string
	}{
		{
			name: "quiet transaction", amount: 100, src: "USA", dst: "USA",
			merchant: "Walmart", riskScore: 10, geoCoin: true,
			want: nil,
		},
		{
			name: "high amount", amount: 4500, src: "USA", dst: "USA",
			merchant: "Amazon", riskScore: 50, geoCoin: false,
			want: []string{models.RuleHighAmount},
		},
		{
			name: "critical score", amount: 200, src: "USA", dst: "USA",
			merchant: "Apple", riskScore: 85, geoCoin: false,
			want: []string{models.RuleCriticalScore},
		},
		{
			name: "geo mismatch needs the coin", amount: 200, src: "USA", dst: "IND",
			merchant: "Netflix", riskScore: 20, geoCoin: false,
			want: nil,
		},
		{
			name: "geo mismatch with coin", amount: 200, src: "USA", dst: "IND",
			merchant: "Netflix", riskScore: 20, geoCoin: true,
			want: []string{models.RuleGeoMismatch},
		},
		{
			name: "risky merchant match is case-insensitive", amount: 200, src: "USA", dst: "USA",
			merchant: "CryptoExchange", riskScore: 20, geoCoin: false,
			want: []string{models.RuleHighRiskMerchant},
		},
		{
			name: "offshore merchant", amount: 200, src: "USA", dst: "USA",
			merchant: "Offshore Services Ltd", riskScore: 20, geoCoin: false,
			want: []string{models.RuleHighRiskMerchant},
		},
		{
			name: "everything at once", amount: 4999, src: "USA", dst: "NGA",
			merchant: "CryptoExchange", riskScore: 95, geoCoin: true,
			want: []string{models.RuleHighAmount, models.RuleGeoMismatch, models.RuleHighRiskMerchant, models.RuleCriticalScore},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TriggeredRules(tt.amount, tt.src, tt.dst, tt.merchant, tt.riskScore, tt.geoCoin)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCriticalScoreMatchesLevel(t *testing.T) {
	// score 85 must both derive critical and carry the CRITICAL_SCORE tag
	tags := TriggeredRules(100, "USA", "USA", "Walmart", 85, false)
	assert.Contains(t, tags, models.RuleCriticalScore)
	assert.Equal(t, models.RiskCritical, models.RiskLevelForScore(85))
}
