package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http/response"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type AppointmentHandler struct {
	appointments services.AppointmentService
}

func NewAppointmentHandler(appointments services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// POST /appointments/book
// body: { "supportPersonId", "scheduledAt" (RFC3339), "note" }
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req services.BookAppointmentInput
	if !bindJSON(c, &req) {
		return
	}
	appt, err := h.appointments.Book(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, appt)
}

// GET /appointments/my
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	out, err := h.appointments.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	appt, err := h.appointments.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, appt)
}

// GET /appointments/admin/all
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	out, err := h.appointments.ListAll(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /appointments/admin/:id/status
// body: { "status": "pending" | "confirmed" | "declined" | "cancelled" }
func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	appt, err := h.appointments.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, appt)
}

// DELETE /admin/appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Appointment removed"})
}
