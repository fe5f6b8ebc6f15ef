package repos

import (
	"gorm.io/gorm"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/care"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/notification"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/user"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/wellness"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type UserRepo = user.UserRepo

type MoodRepo = wellness.MoodRepo
type JournalRepo = wellness.JournalRepo
type SelfCareRepo = wellness.SelfCareRepo

type AppointmentRepo = care.AppointmentRepo
type SupportPersonRepo = care.SupportPersonRepo
type SOSPlanRepo = care.SOSPlanRepo

type NotificationRepo = notification.NotificationRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewMoodRepo(db *gorm.DB, baseLog *logger.Logger) MoodRepo {
	return wellness.NewMoodRepo(db, baseLog)
}
func NewJournalRepo(db *gorm.DB, baseLog *logger.Logger) JournalRepo {
	return wellness.NewJournalRepo(db, baseLog)
}
func NewSelfCareRepo(db *gorm.DB, baseLog *logger.Logger) SelfCareRepo {
	return wellness.NewSelfCareRepo(db, baseLog)
}

func NewAppointmentRepo(db *gorm.DB, baseLog *logger.Logger) AppointmentRepo {
	return care.NewAppointmentRepo(db, baseLog)
}
func NewSupportPersonRepo(db *gorm.DB, baseLog *logger.Logger) SupportPersonRepo {
	return care.NewSupportPersonRepo(db, baseLog)
}
func NewSOSPlanRepo(db *gorm.DB, baseLog *logger.Logger) SOSPlanRepo {
	return care.NewSOSPlanRepo(db, baseLog)
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	return notification.NewNotificationRepo(db, baseLog)
}
