package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type NotificationHandler struct {
	log      *logger.Logger
	notifier services.Notifier
}

func NewNotificationHandler(log *logger.Logger, notifier services.Notifier) *NotificationHandler {
	return &NotificationHandler{
		log:      log.With("handler", "NotificationHandler"),
		notifier: notifier,
	}
}

// GET /notifications?limit=N
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.notifier.List(c.Request.Context(), userID, listLimit(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /notifications/mark-seen
func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	n, err := h.notifier.MarkAllSeen(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"updated": n})
}

// POST /notifications/:id/dismiss
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.notifier.Dismiss(c.Request.Context(), userID, id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
