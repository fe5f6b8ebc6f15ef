package app

import (
	"gorm.io/gorm"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type Repos struct {
	User          repos.UserRepo
	Mood          repos.MoodRepo
	Journal       repos.JournalRepo
	SelfCare      repos.SelfCareRepo
	Appointment   repos.AppointmentRepo
	SupportPerson repos.SupportPersonRepo
	SOSPlan       repos.SOSPlanRepo
	Notification  repos.NotificationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:          repos.NewUserRepo(db, log),
		Mood:          repos.NewMoodRepo(db, log),
		Journal:       repos.NewJournalRepo(db, log),
		SelfCare:      repos.NewSelfCareRepo(db, log),
		Appointment:   repos.NewAppointmentRepo(db, log),
		SupportPerson: repos.NewSupportPersonRepo(db, log),
		SOSPlan:       repos.NewSOSPlanRepo(db, log),
		Notification:  repos.NewNotificationRepo(db, log),
	}
}
