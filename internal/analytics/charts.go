// Package analytics turns a transaction collection into the summaries the
// dashboard charts render. Every function is total: empty input yields empty
// or zero-valued output, never an error. Results are recomputed per call;
// inputs are small enough that caching would buy nothing.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskwatch/riskwatch/internal/models"
)

// Bucket is one labelled count in a chart series.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TrendPoint is one dated score sample for the risk trend line.
type TrendPoint struct {
	Date      string `json:"date"`
	RiskScore int    `json:"riskScore"`
}

// RiskDistribution counts transactions per risk level, zero-filled so every
// level appears even when absent.
func RiskDistribution(txns []models.Transaction) []Bucket {
	counts := make(map[models.RiskLevel]int, len(models.RiskLevels))
	for _, tx := range txns {
		counts[tx.RiskLevel]++
	}

	out := make([]Bucket, 0, len(models.RiskLevels))
	for _, level := range models.RiskLevels {
		out = append(out, Bucket{Name: string(level), Value: counts[level]})
	}
	return out
}

// HourlyVolume buckets the last-24h transactions by hour-of-day label
// ("HH:00"), sorted by label ascending.
func HourlyVolume(txns []models.Transaction, now time.Time) []Bucket {
	counts := make(map[string]int)
	cutoff := now.Add(-24 * time.Hour)
	for _, tx := range txns {
		if tx.Timestamp.After(cutoff) {
			counts[fmt.Sprintf("%02d:00", tx.Timestamp.Hour())]++
		}
	}

	out := make([]Bucket, 0, len(counts))
	for label, n := range counts {
		out = append(out, Bucket{Name: label, Value: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TopCountries counts transactions per source country and returns the top n
// by descending count. Ties break alphabetically so output is stable.
func TopCountries(txns []models.Transaction, n int) []Bucket {
	counts := make(map[string]int)
	for _, tx := range txns {
		counts[tx.SourceCountry]++
	}
	return topN(counts, n)
}

// StatusDistribution counts transactions per status with human-readable
// labels ("under_review" becomes "Under Review").
func StatusDistribution(txns []models.Transaction) []Bucket {
	counts := make(map[models.TransactionStatus]int)
	for _, tx := range txns {
		counts[tx.Status]++
	}

	var out []Bucket
	for _, status := range models.TransactionStatuses {
		if n, ok := counts[status]; ok {
			out = append(out, Bucket{Name: humanize(string(status)), Value: n})
		}
	}
	return out
}

// TopHighRiskCategories counts merchant categories over high/critical
// transactions only, top n by descending count.
func TopHighRiskCategories(txns []models.Transaction, n int) []Bucket {
	counts := make(map[string]int)
	for _, tx := range txns {
		if tx.RiskLevel.IsElevated() {
			counts[tx.MerchantCategory]++
		}
	}
	return topN(counts, n)
}

// RiskScoreTrend returns chronological (date, score) points, keeping the
// most recent n samples.
func RiskScoreTrend(txns []models.Transaction, n int) []TrendPoint {
	sorted := append([]models.Transaction(nil), txns...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })

	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}

	out := make([]TrendPoint, 0, len(sorted))
	for _, tx := range sorted {
		out = append(out, TrendPoint{
			Date:      tx.Timestamp.Format("2006-01-02"),
			RiskScore: tx.RiskScore,
		})
	}
	return out
}

func topN(counts map[string]int, n int) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for name, value := range counts {
		out = append(out, Bucket{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func humanize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
