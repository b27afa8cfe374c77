package views

import (
	"strconv"

	"github.com/riskwatch/riskwatch/internal/filter"
	"github.com/riskwatch/riskwatch/internal/models"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// TransactionQuery carries the filter fields as they arrive on the query
// string. Multi-valued fields repeat the parameter (riskLevel=high&riskLevel=critical).
type TransactionQuery struct {
	Search             string   `form:"search"`
	TimeRange          string   `form:"timeRange"`
	RiskLevels         []string `form:"riskLevel"`
	Channels           []string `form:"channel"`
	Statuses           []string `form:"status"`
	MinAmount          string   `form:"minAmount"`
	MaxAmount          string   `form:"maxAmount"`
	SourceCountry      string   `form:"sourceCountry"`
	DestinationCountry string   `form:"destinationCountry"`
}

// ToSpec maps the raw query onto a filter spec. Unparseable amount bounds
// are dropped, which leaves them unconstrained.
func (q TransactionQuery) ToSpec() filter.Spec {
	spec := filter.Spec{
		TimeRange:          filter.TimeRange(q.TimeRange),
		SourceCountry:      q.SourceCountry,
		DestinationCountry: q.DestinationCountry,
	}
	for _, l := range q.RiskLevels {
		spec.RiskLevels = append(spec.RiskLevels, models.RiskLevel(l))
	}
	for _, c := range q.Channels {
		spec.Channels = append(spec.Channels, models.Channel(c))
	}
	for _, s := range q.Statuses {
		spec.Statuses = append(spec.Statuses, models.TransactionStatus(s))
	}
	if v, err := strconv.ParseFloat(q.MinAmount, 64); err == nil {
		spec.MinAmount = &v
	}
	if v, err := strconv.ParseFloat(q.MaxAmount, 64); err == nil {
		spec.MaxAmount = &v
	}
	return spec
}
