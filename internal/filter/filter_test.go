package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func sampleTransactions() []models.Transaction {
	now := time.Now()
	return []models.Transaction{
		{
			ID: "txn-1", TransactionID: "T100", CustomerID: "CUST1001", MerchantName: "Amazon",
			Amount: 120, Timestamp: now.Add(-time.Hour), Channel: models.ChannelCard,
			RiskLevel: models.RiskLow, Status: models.TxStatusNormal,
			SourceCountry: "USA", DestinationCountry: "USA",
		},
		{
			ID: "txn-2", TransactionID: "T200", CustomerID: "CUST2002", MerchantName: "CryptoExchange",
			Amount: 4500, Timestamp: now.Add(-3 * 24 * time.Hour), Channel: models.ChannelWallet,
			RiskLevel: models.RiskCritical, Status: models.TxStatusFlagged,
			SourceCountry: "USA", DestinationCountry: "NGA",
		},
		{
			ID: "txn-3", TransactionID: "T300", CustomerID: "CUST3003", MerchantName: "Walmart",
			Amount: 900, Timestamp: now.Add(-20 * 24 * time.Hour), Channel: models.ChannelUPI,
			RiskLevel: models.RiskMedium, Status: models.TxStatusUnderReview,
			SourceCountry: "IND", DestinationCountry: "IND",
		},
	}
}

func TestApplyDefaultSpecIsIdentity(t *testing.T) {
	txns := sampleTransactions()
	got := Apply(txns, Spec{}, "")
	assert.Equal(t, txns, got)
}

func TestApplyPreservesOrderAndInput(t *testing.T) {
	txns := sampleTransactions()
	got := Apply(txns, Spec{RiskLevels: []models.RiskLevel{models.RiskLow, models.RiskCritical}}, "")

	require.Len(t, got, 2)
	assert.Equal(t, "txn-1", got[0].ID)
	assert.Equal(t, "txn-2", got[1].ID)
	// input untouched
	assert.Len(t, txns, 3)
	assert.Equal(t, "txn-1", txns[0].ID)
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	txns := sampleTransactions()

	tests := []struct {
		term string
		want []string
	}{
		{"t200", []string{"txn-2"}},       // transaction id, case-insensitive
		{"cust3003", []string{"txn-3"}},   // customer id
		{"crypto", []string{"txn-2"}},     // merchant substring
		{"CUST", []string{"txn-1", "txn-2", "txn-3"}},
		{"nomatch", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Apply(txns, Spec{}, tt.term)
			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestApplyTimeRange(t *testing.T) {
	txns := sampleTransactions()

	assert.Len(t, Apply(txns, Spec{TimeRange: RangeAll}, ""), 3)
	assert.Len(t, Apply(txns, Spec{TimeRange: Range24h}, ""), 1)
	assert.Len(t, Apply(txns, Spec{TimeRange: Range7d}, ""), 2)
	assert.Len(t, Apply(txns, Spec{TimeRange: Range30d}, ""), 3)
}

func TestApplyChannelAndStatus(t *testing.T) {
	txns := sampleTransactions()

	got := Apply(txns, Spec{Channels: []models.Channel{models.ChannelWallet}}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "txn-2", got[0].ID)

	got = Apply(txns, Spec{Statuses: []models.TransactionStatus{models.TxStatusUnderReview}}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "txn-3", got[0].ID)
}

func TestApplyAmountBoundsAreInclusive(t *testing.T) {
	txns := sampleTransactions()

	got := Apply(txns, Spec{MinAmount: ptr(120), MaxAmount: ptr(900)}, "")
	require.Len(t, got, 2)
	assert.Equal(t, "txn-1", got[0].ID)
	assert.Equal(t, "txn-3", got[1].ID)

	// nil bounds restrict nothing
	assert.Len(t, Apply(txns, Spec{MinAmount: nil, MaxAmount: nil}, ""), 3)
}

func TestApplyCountryExactMatch(t *testing.T) {
	txns := sampleTransactions()

	got := Apply(txns, Spec{SourceCountry: "IND"}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "txn-3", got[0].ID)

	got = Apply(txns, Spec{DestinationCountry: "NGA"}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "txn-2", got[0].ID)
}

func TestApplyCombinesPredicatesWithAnd(t *testing.T) {
	txns := sampleTransactions()

	got := Apply(txns, Spec{
		RiskLevels:    []models.RiskLevel{models.RiskCritical},
		SourceCountry: "USA",
		MinAmount:     ptr(4000),
	}, "crypto")
	require.Len(t, got, 1)
	assert.Equal(t, "txn-2", got[0].ID)

	// conflicting constraints yield nothing
	got = Apply(txns, Spec{
		RiskLevels:    []models.RiskLevel{models.RiskCritical},
		SourceCountry: "IND",
	}, "")
	assert.Empty(t, got)
}

func TestApplyResultShrinksAsConstraintsGrow(t *testing.T) {
	txns := sampleTransactions()

	specs := []Spec{
		{},
		{TimeRange: Range30d},
		{TimeRange: Range30d, RiskLevels: []models.RiskLevel{models.RiskLow, models.RiskMedium}},
		{TimeRange: Range30d, RiskLevels: []models.RiskLevel{models.RiskLow, models.RiskMedium}, SourceCountry: "IND"},
		{TimeRange: Range30d, RiskLevels: []models.RiskLevel{models.RiskLow, models.RiskMedium}, SourceCountry: "IND", MinAmount: ptr(5000)},
	}

	prev := len(txns) + 1
	for i, spec := range specs {
		n := len(Apply(txns, spec, ""))
		assert.LessOrEqual(t, n, prev, "spec %d grew the result set", i)
		prev = n
	}
}

func TestApplyTruncatesAtMaxResults(t *testing.T) {
	now := time.Now()
	txns := make([]models.Transaction, 0, MaxResults+50)
	for i := 0; i < MaxResults+50; i++ {
		txns = append(txns, models.Transaction{
			ID:        fmt.Sprintf("txn-%d", i+1),
			Timestamp: now,
		})
	}

	got := Apply(txns, Spec{}, "")
	require.Len(t, got, MaxResults)
	// first MaxResults in order, not an arbitrary subset
	assert.Equal(t, "txn-1", got[0].ID)
	assert.Equal(t, fmt.Sprintf("txn-%d", MaxResults), got[MaxResults-1].ID)
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, Spec{TimeRange: Range24h}, "term"))
}
