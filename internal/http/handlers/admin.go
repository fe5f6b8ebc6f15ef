package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/jobs/scheduler"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

// ReminderTrigger runs a reminder pass on demand.
type ReminderTrigger interface {
	Trigger(ctx context.Context, pass string) (services.PassReport, error)
}

type AdminHandler struct {
	admin     services.AdminService
	reminders ReminderTrigger
}

func NewAdminHandler(admin services.AdminService, reminders ReminderTrigger) *AdminHandler {
	return &AdminHandler{admin: admin, reminders: reminders}
}

// GET /admin/health
func (h *AdminHandler) Health(c *gin.Context) {
	response.RespondOK(c, gin.H{"ok": true, "role": "admin"})
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	out, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PATCH /admin/users/:id/role
// body: { "role": "user" | "admin" }
func (h *AdminHandler) SetRole(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.admin.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteUser(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "User removed"})
}

// GET /admin/journals
func (h *AdminHandler) ListJournals(c *gin.Context) {
	out, err := h.admin.ListJournals(c.Request.Context(), listLimit(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /admin/journals/:id
func (h *AdminHandler) DeleteJournal(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteJournal(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Journal removed"})
}

// GET /admin/moods
func (h *AdminHandler) ListMoods(c *gin.Context) {
	out, err := h.admin.ListMoods(c.Request.Context(), listLimit(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /admin/moods/:id
func (h *AdminHandler) DeleteMood(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteMood(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Mood removed"})
}

// POST /admin/reminders/:pass/run
func (h *AdminHandler) RunReminders(c *gin.Context) {
	pass := c.Param("pass")
	if pass != services.PassDaily && pass != services.PassHourly {
		response.RespondAPIError(c, apierr.Validation("pass"))
		return
	}
	if h.reminders == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "scheduler_unavailable", errors.New("reminder scheduler not configured"))
		return
	}
	report, err := h.reminders.Trigger(c.Request.Context(), pass)
	if err != nil {
		if errors.Is(err, scheduler.ErrPassRunning) {
			response.RespondError(c, http.StatusConflict, "pass_running", err)
			return
		}
		if errors.Is(err, scheduler.ErrStopped) {
			response.RespondError(c, http.StatusServiceUnavailable, "scheduler_stopped", err)
			return
		}
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, report)
}
