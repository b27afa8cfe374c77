package models

// KpiData holds the headline figures derived from the current collections.
// Always recomputed on read so it cannot drift from the underlying data.
type KpiData struct {
	TotalTransactions    int `json:"totalTransactions"`    // last 24h
	OpenAlerts           int `json:"openAlerts"`           // open + in_progress
	HighRiskTransactions int `json:"highRiskTransactions"` // high/critical in last 24h
	AvgRiskScore         int `json:"avgRiskScore"`         // integer mean over last 24h, 0 when empty
}
