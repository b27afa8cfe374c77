package models

import "time"

// RiskLevel is the coarse bucket derived from a numeric risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevels lists all levels in ascending severity.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// RiskLevelForScore maps a 0-100 score into a level. Boundary values fall
// into the lower band: 80 is high, 60 is medium, 30 is low.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score > 80:
		return RiskCritical
	case score > 60:
		return RiskHigh
	case score > 30:
		return RiskMedium
	default:
		return RiskLow
	}
}

// IsElevated reports whether the level warrants an automatic alert.
func (r RiskLevel) IsElevated() bool {
	return r == RiskHigh || r == RiskCritical
}

type TransactionStatus string

const (
	TxStatusNormal      TransactionStatus = "normal"
	TxStatusFlagged     TransactionStatus = "flagged"
	TxStatusUnderReview TransactionStatus = "under_review"
	TxStatusBlocked     TransactionStatus = "blocked"
)

// TransactionStatuses lists all statuses in display order.
var TransactionStatuses = []TransactionStatus{TxStatusNormal, TxStatusFlagged, TxStatusUnderReview, TxStatusBlocked}

type Channel string

const (
	ChannelCard       Channel = "card"
	ChannelUPI        Channel = "upi"
	ChannelNetbanking Channel = "netbanking"
	ChannelWallet     Channel = "wallet"
	ChannelOther      Channel = "other"
)

// Rule tags attached by the generator.
const (
	RuleHighAmount       = "HIGH_AMOUNT"
	RuleGeoMismatch      = "GEO_MISMATCH"
	RuleHighRiskMerchant = "HIGH_RISK_MERCHANT"
	RuleCriticalScore    = "CRITICAL_SCORE"
)

// Transaction is immutable after creation except for Status and AlertID,
// which change only when an alert is attached.
type Transaction struct {
	ID                 string            `json:"id"`
	TransactionID      string            `json:"transactionId"`
	Amount             float64           `json:"amount"`
	Currency           string            `json:"currency"`
	Timestamp          time.Time         `json:"timestamp"`
	Channel            Channel           `json:"channel"`
	MerchantName       string            `json:"merchantName"`
	MerchantCategory   string            `json:"merchantCategory"`
	SourceCountry      string            `json:"sourceCountry"`
	DestinationCountry string            `json:"destinationCountry"`
	CustomerID         string            `json:"customerId"`
	RiskScore          int               `json:"riskScore"`
	RiskLevel          RiskLevel         `json:"riskLevel"`
	Status             TransactionStatus `json:"status"`
	AlertID            string            `json:"alertId,omitempty"`
	TriggeredRules     []string          `json:"triggeredRules,omitempty"`
}
