package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riskwatch/riskwatch/internal/store"
	"github.com/riskwatch/riskwatch/internal/views"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

type AuthHandler struct {
	logger  *zap.Logger
	store   *store.Store
	limiter *pkg.LoginLimiter
}

func NewAuthHandler(logger *zap.Logger, s *store.Store, limiter *pkg.LoginLimiter) *AuthHandler {
	return &AuthHandler{logger: logger, store: s, limiter: limiter}
}

// RegisterRoutes registers auth routes on the provided Gin group.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
}

func (h *AuthHandler) Login(c *gin.Context) {
	traceID := c.GetString(pkg.TraceId)

	var req views.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID,
			pkg.NewAppError(pkg.ErrInvalidInputCode, "invalid request body", err))
		c.JSON(resp.Status, resp)
		return
	}

	if !h.limiter.Allow(c.Request.Context()) {
		resp := pkg.ToErrorResponse(h.logger, traceID,
			pkg.NewAppError(pkg.ErrRateLimitedCode, "too many login attempts", pkg.ErrRateLimitExceeded))
		c.JSON(resp.Status, resp)
		return
	}

	user, err := h.store.Login(c.Request.Context(), req.Email)
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}

	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"user": user,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.JSON(http.StatusOK, pkg.APIResponse{
		Data: map[string]interface{}{
			"loggedOut": true,
		},
	})
}
