package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riskwatch/riskwatch/internal/analytics"
	"github.com/riskwatch/riskwatch/internal/store"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

type ChartHandler struct {
	logger *zap.Logger
	store  *store.Store
}

func NewChartHandler(logger *zap.Logger, s *store.Store) *ChartHandler {
	return &ChartHandler{logger: logger, store: s}
}

func (h *ChartHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/charts/risk-distribution", h.RiskDistribution)
	r.GET("/charts/hourly-volume", h.HourlyVolume)
	r.GET("/charts/top-countries", h.TopCountries)
	r.GET("/charts/status-distribution", h.StatusDistribution)
	r.GET("/charts/high-risk-categories", h.HighRiskCategories)
	r.GET("/charts/risk-trend", h.RiskTrend)
}

func (h *ChartHandler) RiskDistribution(c *gin.Context) {
	writeSeries(c, analytics.RiskDistribution(h.store.Transactions()))
}

func (h *ChartHandler) HourlyVolume(c *gin.Context) {
	writeSeries(c, analytics.HourlyVolume(h.store.Transactions(), time.Now()))
}

func (h *ChartHandler) TopCountries(c *gin.Context) {
	writeSeries(c, analytics.TopCountries(h.store.Transactions(), intQuery(c, "n", 10)))
}

func (h *ChartHandler) StatusDistribution(c *gin.Context) {
	writeSeries(c, analytics.StatusDistribution(h.store.Transactions()))
}

func (h *ChartHandler) HighRiskCategories(c *gin.Context) {
	writeSeries(c, analytics.TopHighRiskCategories(h.store.Transactions(), intQuery(c, "n", 5)))
}

func (h *ChartHandler) RiskTrend(c *gin.Context) {
	points := analytics.RiskScoreTrend(h.store.Transactions(), intQuery(c, "n", 100))
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"series": points,
		},
	})
}

func writeSeries(c *gin.Context, series []analytics.Bucket) {
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"series": series,
		},
	})
}

// intQuery reads a positive integer query param, falling back on bad input.
func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
