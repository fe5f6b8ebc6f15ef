package care

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusDeclined  AppointmentStatus = "declined"
	StatusCancelled AppointmentStatus = "cancelled"
)

var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch st := AppointmentStatus(s); st {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled:
		return st, true
	}
	return "", false
}

// CanTransitionTo reports whether s -> to is allowed. Declined and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(to AppointmentStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Active appointments still block time and still deserve reminders.
func (s AppointmentStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s AppointmentStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

func ActiveStatuses() []AppointmentStatus {
	return []AppointmentStatus{StatusPending, StatusConfirmed}
}

// ProviderSnapshot is copied from the support person at booking time.
type ProviderSnapshot struct {
	Name string `gorm:"column:provider_name" json:"name"`
	Type string `gorm:"column:provider_type" json:"type"`
}

type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_appointment_user_scheduled,priority:1" json:"userId"`
	SupportPersonID uuid.UUID `gorm:"type:uuid;not null;index" json:"supportPersonId"`

	Provider ProviderSnapshot `gorm:"embedded" json:"provider"`

	ScheduledAt time.Time         `gorm:"not null;index:idx_appointment_user_scheduled,priority:2" json:"scheduledAt"`
	Note        string            `json:"note"`
	Status      AppointmentStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Appointment) TableName() string { return "appointment" }

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	a.ScheduledAt = a.ScheduledAt.UTC()
	return nil
}
