package analytics

import (
	"testing"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskDistributionZeroFilled(t *testing.T) {
	got := RiskDistribution([]models.Transaction{
		{RiskLevel: models.RiskCritical},
		{RiskLevel: models.RiskCritical},
		{RiskLevel: models.RiskLow},
	})

	assert.Equal(t, []Bucket{
		{Name: "low", Value: 1},
		{Name: "medium", Value: 0},
		{Name: "high", Value: 0},
		{Name: "critical", Value: 2},
	}, got)
}

func TestRiskDistributionEmptyInput(t *testing.T) {
	got := RiskDistribution(nil)
	require.Len(t, got, 4)
	for _, b := range got {
		assert.Zero(t, b.Value)
	}
}

func TestHourlyVolume(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	txns := []models.Transaction{
		{Timestamp: now.Add(-30 * time.Minute)},     // 23:00
		{Timestamp: now.Add(-90 * time.Minute)},     // 22:00
		{Timestamp: now.Add(-100 * time.Minute)},    // 21:50
		{Timestamp: now.Add(-20 * time.Hour)},       // 03:30
		{Timestamp: now.Add(-48 * time.Hour)},       // excluded
	}

	got := HourlyVolume(txns, now)
	assert.Equal(t, []Bucket{
		{Name: "03:00", Value: 1},
		{Name: "21:00", Value: 1},
		{Name: "22:00", Value: 1},
		{Name: "23:00", Value: 1},
	}, got)
}

func TestHourlyVolumeEmpty(t *testing.T) {
	assert.Empty(t, HourlyVolume(nil, time.Now()))
}

func TestTopCountries(t *testing.T) {
	txns := []models.Transaction{
		{SourceCountry: "USA"},
		{SourceCountry: "USA"},
		{SourceCountry: "IND"},
		{SourceCountry: "IND"},
		{SourceCountry: "IND"},
		{SourceCountry: "GBR"},
	}

	got := TopCountries(txns, 2)
	assert.Equal(t, []Bucket{
		{Name: "IND", Value: 3},
		{Name: "USA", Value: 2},
	}, got)
}

func TestTopCountriesTiesBreakAlphabetically(t *testing.T) {
	txns := []models.Transaction{
		{SourceCountry: "JPN"},
		{SourceCountry: "BRA"},
	}
	got := TopCountries(txns, 10)
	assert.Equal(t, []Bucket{
		{Name: "BRA", Value: 1},
		{Name: "JPN", Value: 1},
	}, got)
}

func TestStatusDistribution(t *testing.T) {
	txns := []models.Transaction{
		{Status: models.TxStatusNormal},
		{Status: models.TxStatusUnderReview},
		{Status: models.TxStatusUnderReview},
		{Status: models.TxStatusFlagged},
	}

	got := StatusDistribution(txns)
	assert.Equal(t, []Bucket{
		{Name: "Normal", Value: 1},
		{Name: "Flagged", Value: 1},
		{Name: "Under Review", Value: 2},
	}, got)
}

func TestTopHighRiskCategories(t *testing.T) {
	txns := []models.Transaction{
		{RiskLevel: models.RiskCritical, MerchantCategory: "Financial Services"},
		{RiskLevel: models.RiskHigh, MerchantCategory: "Financial Services"},
		{RiskLevel: models.RiskHigh, MerchantCategory: "E-commerce"},
		{RiskLevel: models.RiskLow, MerchantCategory: "Retail"},   // ignored
		{RiskLevel: models.RiskMedium, MerchantCategory: "Retail"}, // ignored
	}

	got := TopHighRiskCategories(txns, 5)
	assert.Equal(t, []Bucket{
		{Name: "Financial Services", Value: 2},
		{Name: "E-commerce", Value: 1},
	}, got)
}

func TestRiskScoreTrend(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		{Timestamp: base.AddDate(0, 0, 2), RiskScore: 30},
		{Timestamp: base, RiskScore: 10},
		{Timestamp: base.AddDate(0, 0, 1), RiskScore: 20},
	}

	got := RiskScoreTrend(txns, 0)
	require.Len(t, got, 3)
	assert.Equal(t, TrendPoint{Date: "2025-06-01", RiskScore: 10}, got[0])
	assert.Equal(t, TrendPoint{Date: "2025-06-03", RiskScore: 30}, got[2])

	// keeps only the most recent n
	capped := RiskScoreTrend(txns, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, 20, capped[0].RiskScore)
	assert.Equal(t, 30, capped[1].RiskScore)
}

func TestAllDerivationsTotalOnEmptyInput(t *testing.T) {
	assert.NotNil(t, RiskDistribution(nil))
	assert.Empty(t, HourlyVolume(nil, time.Now()))
	assert.Empty(t, TopCountries(nil, 10))
	assert.Empty(t, StatusDistribution(nil))
	assert.Empty(t, TopHighRiskCategories(nil, 5))
	assert.Empty(t, RiskScoreTrend(nil, 100))
}
