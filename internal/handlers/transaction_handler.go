package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riskwatch/riskwatch/internal/filter"
	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/riskwatch/riskwatch/internal/store"
	"github.com/riskwatch/riskwatch/internal/views"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	logger *zap.Logger
	store  *store.Store
}

func NewTransactionHandler(logger *zap.Logger, s *store.Store) *TransactionHandler {
	return &TransactionHandler{logger: logger, store: s}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/state", h.GetState)
	r.GET("/transactions", h.ListTransactions)
	r.POST("/transactions/:id/alerts", h.CreateManualAlert)
	r.GET("/alerts", h.ListAlerts)
}

// GetState returns the full snapshot the dashboard renders from.
func (h *TransactionHandler) GetState(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"transactions": snap.Transactions,
			"alerts":       snap.Alerts,
			"kpis":         snap.KPIs,
			"currentUser":  snap.CurrentUser,
		},
	})
}

// ListTransactions applies the query-string filter spec. The result is
// capped at filter.MaxResults rows; the cap is reported alongside the page
// so callers can tell a full page from a truncated one.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	traceID := c.GetString(pkg.TraceId)

	var query views.TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID,
			pkg.NewAppError(pkg.ErrInvalidInputCode, "invalid filter query", err))
		c.JSON(resp.Status, resp)
		return
	}

	result := filter.Apply(h.store.Transactions(), query.ToSpec(), query.Search)
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"transactions": result,
			"count":        len(result),
			"limit":        filter.MaxResults,
		},
	})
}

// CreateManualAlert raises an analyst alert on the transaction. Duplicate
// requests and unknown ids are reported as created=false, not errors.
func (h *TransactionHandler) CreateManualAlert(c *gin.Context) {
	alert, created := h.store.CreateManualAlert(c.Param("id"))
	if !created {
		c.JSON(http.StatusOK, pkg.APIResponse{
			Data: map[string]interface{}{
				"created": false,
			},
		})
		return
	}
	c.JSON(http.StatusCreated, pkg.APIResponse{
		Data: map[string]interface{}{
			"created": true,
			"alert":   alert,
		},
	})
}

// ListAlerts returns the alert queue, optionally narrowed to one lifecycle
// status, capped at 100 rows for display.
func (h *TransactionHandler) ListAlerts(c *gin.Context) {
	status := c.Query("status")
	alerts := h.store.AlertsByStatus(models.AlertStatus(status), 100)
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"alerts": alerts,
		},
	})
}
