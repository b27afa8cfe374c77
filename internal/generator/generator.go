// Package generator produces synthetic transactions with derived risk fields.
// Output is fully determined by the injected random source, so tests run it
// against a fixed seed.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
)

// Fixed draw pools for the synthetic dataset.
var (
	Countries = []string{"USA", "GBR", "IND", "CHN", "BRA", "RUS", "NGA", "DEU", "FRA", "JPN"}

	Merchants = []string{"Amazon", "Walmart", "Apple", "Netflix", "ExxonMobil", "CryptoExchange", "Offshore Services Ltd"}

	MerchantCategories = []string{"E-commerce", "Retail", "Technology", "Entertainment", "Energy", "Financial Services", "Professional Services"}

	channels = []models.Channel{models.ChannelCard, models.ChannelUPI, models.ChannelNetbanking, models.ChannelWallet}
)

const (
	maxAmount        = 5000.0
	highAmountCutoff = 4000.0
	backfillWindow   = 30 * 24 * time.Hour
)

type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator driven by the given seedable source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// NewWithClock additionally fixes the clock, for tests.
func NewWithClock(rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// Generate produces one synthetic transaction. Realtime transactions are
// stamped with the current time; backfill ones land at a random instant
// within the last 30 days.
func (g *Generator) Generate(seq int, realtime bool) models.Transaction {
	now := g.now()

	amount := g.rng.Float64() * maxAmount
	riskScore := g.rng.Intn(101)
	riskLevel := models.RiskLevelForScore(riskScore)

	sourceCountry := Countries[g.rng.Intn(len(Countries))]
	destinationCountry := Countries[g.rng.Intn(len(Countries))]
	merchantName := Merchants[g.rng.Intn(len(Merchants))]

	timestamp := now
	if !realtime {
		timestamp = now.Add(-time.Duration(g.rng.Float64() * float64(backfillWindow)))
	}

	status := models.TxStatusNormal
	if riskLevel.IsElevated() {
		status = models.TxStatusFlagged
	}

	return models.Transaction{
		ID:                 fmt.Sprintf("txn-%d", seq),
		TransactionID:      fmt.Sprintf("T%d%d", now.UnixMilli(), seq),
		Amount:             amount,
		Currency:           "USD",
		Timestamp:          timestamp,
		Channel:            channels[g.rng.Intn(len(channels))],
		MerchantName:       merchantName,
		MerchantCategory:   MerchantCategories[g.rng.Intn(len(MerchantCategories))],
		SourceCountry:      sourceCountry,
		DestinationCountry: destinationCountry,
		CustomerID:         fmt.Sprintf("CUST%d", 1000+g.rng.Intn(9000)),
		RiskScore:          riskScore,
		RiskLevel:          riskLevel,
		Status:             status,
		TriggeredRules:     TriggeredRules(amount, sourceCountry, destinationCountry, merchantName, riskScore, g.rng.Float64() > 0.5),
	}
}

// TriggeredRules derives the rule tags for a transaction. The checks are
// independent; tags are appended in a fixed order. GEO_MISMATCH fires on
// roughly half of the cross-border transactions (geoCoin), deliberate noise
// kept from the demo dataset.
func TriggeredRules(amount float64, source, destination, merchant string, riskScore int, geoCoin bool) []string {
	var tags []string
	if amount > highAmountCutoff {
		tags = append(tags, models.RuleHighAmount)
	}
	if source != destination && geoCoin {
		tags = append(tags, models.RuleGeoMismatch)
	}
	lower := strings.ToLower(merchant)
	if strings.Contains(lower, "crypto") || strings.Contains(lower, "offshore") {
		tags = append(tags, models.RuleHighRiskMerchant)
	}
	if riskScore > 80 {
		tags = append(tags, models.RuleCriticalScore)
	}
	return tags
}
