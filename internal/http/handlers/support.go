package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type SupportHandler struct {
	support services.SupportService
}

func NewSupportHandler(support services.SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

// GET /support-persons
func (h *SupportHandler) List(c *gin.Context) {
	out, err := h.support.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /support-persons/seed
func (h *SupportHandler) Seed(c *gin.Context) {
	n, err := h.support.Seed(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"seeded": n})
}
