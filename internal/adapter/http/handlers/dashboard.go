package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/adapter/http/mapper"
	"github.com/YC815/entropy-backend/internal/adapter/http/middleware"
	"github.com/YC815/entropy-backend/internal/core/ports"
	"github.com/YC815/entropy-backend/pkg/apierrors"
)

type DashboardHandler struct {
	gameService ports.GameService
}

func NewDashboardHandler(gameService ports.GameService) *DashboardHandler {
	return &DashboardHandler{gameService: gameService}
}

// GetDashboard returns the current strategic state: integrity, stress
// breakdown, efficiency status and reward multiplier.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	lang := middleware.GetLang(c)

	snapshot, err := h.gameService.CalculateState(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to calculate dashboard state", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(snapshot))
}
