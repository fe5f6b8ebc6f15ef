package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GET /analytics/summary?from=YYYY-MM-DD&to=YYYY-MM-DD (to is exclusive)
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.analytics.SummaryForDates(c.Request.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /analytics/day?date=YYYY-MM-DD
func (h *AnalyticsHandler) Day(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.analytics.DayDetails(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}
