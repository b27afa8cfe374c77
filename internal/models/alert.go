package models

import (
	"fmt"
	"time"
)

type AlertStatus string

const (
	AlertOpen          AlertStatus = "open"
	AlertInProgress    AlertStatus = "in_progress"
	AlertClosed        AlertStatus = "closed"
	AlertFalsePositive AlertStatus = "false_positive"
)

// AlertStatuses lists all lifecycle states in display order.
var AlertStatuses = []AlertStatus{AlertOpen, AlertInProgress, AlertClosed, AlertFalsePositive}

// ActorSystem is the timeline actor for machine-generated entries.
const ActorSystem = "System"

// TimelineEntry is one append-only (timestamp, actor, action) record on an alert.
type TimelineEntry struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Notes  string    `json:"notes,omitempty"`
}

// Alert is a case record created in response to a risky transaction, either
// automatically by the producer or manually by an analyst. A transaction has
// at most one alert.
type Alert struct {
	ID             string          `json:"id"`
	AlertID        string          `json:"alertId"`
	TransactionRef string          `json:"transactionRef"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	RiskScore      int             `json:"riskScore"`
	RiskLevel      RiskLevel       `json:"riskLevel"`
	Status         AlertStatus     `json:"status"`
	AssignedTo     string          `json:"assignedTo,omitempty"`
	Tags           []string        `json:"tags"`
	CreatedAt      time.Time       `json:"createdAt"`
	Timeline       []TimelineEntry `json:"timeline"`
}

// NewAutoAlert builds the open alert synthesized for a high/critical
// transaction. Its timeline starts with a single system "Alert Created"
// entry at the transaction timestamp.
func NewAutoAlert(seq int, tx Transaction) Alert {
	return Alert{
		ID:             fmt.Sprintf("alert-%d", seq),
		AlertID:        fmt.Sprintf("A%d%d", time.Now().UnixMilli(), seq),
		TransactionRef: tx.ID,
		Title:          fmt.Sprintf("High Risk Transaction: %s", tx.MerchantName),
		Description:    fmt.Sprintf("Transaction of %.2f %s flagged with risk score %d.", tx.Amount, tx.Currency, tx.RiskScore),
		RiskScore:      tx.RiskScore,
		RiskLevel:      tx.RiskLevel,
		Status:         AlertOpen,
		Tags:           tx.TriggeredRules,
		CreatedAt:      tx.Timestamp,
		Timeline:       []TimelineEntry{{At: tx.Timestamp, Actor: ActorSystem, Action: "Alert Created"}},
	}
}
