package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riskwatch/riskwatch/internal/rules"
	"github.com/riskwatch/riskwatch/internal/store"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

type RuleHandler struct {
	logger *zap.Logger
	rules  *rules.Service
}

func NewRuleHandler(logger *zap.Logger, svc *rules.Service) *RuleHandler {
	return &RuleHandler{logger: logger, rules: svc}
}

func (h *RuleHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/rules", h.ListRules)
	r.POST("/rules/:id/toggle", h.ToggleRule)
	r.GET("/watchlist", h.ListWatchlist)
	r.GET("/admin/users", h.ListUsers)
}

func (h *RuleHandler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"rules": h.rules.Rules(),
		},
	})
}

func (h *RuleHandler) ToggleRule(c *gin.Context) {
	rule, err := h.rules.ToggleRule(c.Param("id"))
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, c.GetString(pkg.TraceId), err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"rule": rule,
		},
	})
}

func (h *RuleHandler) ListWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"watchlist": h.rules.Watchlist(),
		},
	})
}

func (h *RuleHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"users": store.Directory(),
		},
	})
}
