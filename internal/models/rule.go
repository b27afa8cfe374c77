package models

import "time"

type RuleAction string

const (
	RuleActionFlag  RuleAction = "flag"
	RuleActionBlock RuleAction = "block"
	RuleActionAllow RuleAction = "allow"
)

type RuleStatus string

const (
	RuleActive   RuleStatus = "active"
	RuleInactive RuleStatus = "inactive"
)

// Rule is a monitoring rule shown for reference. Rules are displayed and
// toggled but never evaluated against transactions.
type Rule struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Condition    string     `json:"condition"`
	Action       RuleAction `json:"action"`
	Status       RuleStatus `json:"status"`
	LastModified time.Time  `json:"lastModified"`
}

type WatchlistType string

const (
	WatchCustomerID   WatchlistType = "customer_id"
	WatchMerchantName WatchlistType = "merchant_name"
	WatchIPAddress    WatchlistType = "ip_address"
	WatchCountry      WatchlistType = "country"
)

// WatchlistItem is a flagged entity shown for reference; not evaluated here.
type WatchlistItem struct {
	ID      string        `json:"id"`
	Type    WatchlistType `json:"type"`
	Value   string        `json:"value"`
	Reason  string        `json:"reason"`
	AddedAt time.Time     `json:"addedAt"`
}
