package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type MoodHandler struct {
	moods services.MoodService
}

func NewMoodHandler(moods services.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

// POST /moods
func (h *MoodHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req services.MoodInput
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.moods.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, entry)
}

// GET /moods?limit=N
func (h *MoodHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.moods.List(c.Request.Context(), userID, listLimit(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

type JournalHandler struct {
	journals services.JournalService
}

func NewJournalHandler(journals services.JournalService) *JournalHandler {
	return &JournalHandler{journals: journals}
}

// POST /journal
func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req services.JournalInput
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.journals.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, entry)
}

// GET /journal?limit=N
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.journals.List(c.Request.Context(), userID, listLimit(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

type SelfCareHandler struct {
	selfCare services.SelfCareService
}

func NewSelfCareHandler(selfCare services.SelfCareService) *SelfCareHandler {
	return &SelfCareHandler{selfCare: selfCare}
}

// POST /selfcare/complete
// body: { "taskType": "hydration" | "exercise" | "meditation" | "breathing" }
func (h *SelfCareHandler) Complete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req services.SelfCareInput
	if !bindJSON(c, &req) {
		return
	}
	done, err := h.selfCare.Complete(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, done)
}

// GET /selfcare/today
func (h *SelfCareHandler) Today(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.selfCare.Today(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tasks": out})
}
