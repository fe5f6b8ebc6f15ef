package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type SOSHandler struct {
	sos services.SOSService
}

func NewSOSHandler(sos services.SOSService) *SOSHandler {
	return &SOSHandler{sos: sos}
}

// GET /sos/my
// Responds with {"plan": null} when the user has not saved one yet.
func (h *SOSHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	plan, err := h.sos.Get(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"plan": plan})
}

// PUT /sos
func (h *SOSHandler) Save(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req services.SOSPlanInput
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.sos.Save(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"plan": plan})
}

// DELETE /sos
func (h *SOSHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.sos.Delete(c.Request.Context(), userID); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "SOS plan removed"})
}
