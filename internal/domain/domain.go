package domain

import (
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/care"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/notification"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/user"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/wellness"
)

const (
	RoleUser  = user.RoleUser
	RoleAdmin = user.RoleAdmin

	AppointmentPending   = care.StatusPending
	AppointmentConfirmed = care.StatusConfirmed
	AppointmentDeclined  = care.StatusDeclined
	AppointmentCancelled = care.StatusCancelled

	TaskHydration  = wellness.TaskHydration
	TaskExercise   = wellness.TaskExercise
	TaskMeditation = wellness.TaskMeditation
	TaskBreathing  = wellness.TaskBreathing

	NotificationMood        = notification.TypeMood
	NotificationJournal     = notification.TypeJournal
	NotificationSelfCare    = notification.TypeSelfCare
	NotificationAppointment = notification.TypeAppointment
)

type (
	User = user.User

	MoodEntry          = wellness.MoodEntry
	JournalEntry       = wellness.JournalEntry
	SelfCareCompletion = wellness.SelfCareCompletion

	Appointment       = care.Appointment
	AppointmentStatus = care.AppointmentStatus
	ProviderSnapshot  = care.ProviderSnapshot
	SupportPerson     = care.SupportPerson
	SOSPlan           = care.SOSPlan
	SOSStep           = care.SOSStep
	SOSContact        = care.SOSContact

	Notification     = notification.Notification
	NotificationType = notification.Type
)

var ValidRole = user.ValidRole

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&User{},
		&MoodEntry{},
		&JournalEntry{},
		&SelfCareCompletion{},
		&SupportPerson{},
		&Appointment{},
		&SOSPlan{},
		&Notification{},
	}
}
