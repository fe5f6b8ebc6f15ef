package wellness

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskHydration  = "hydration"
	TaskExercise   = "exercise"
	TaskMeditation = "meditation"
	TaskBreathing  = "breathing"
)

func SelfCareTaskTypes() []string {
	return []string{TaskHydration, TaskExercise, TaskMeditation, TaskBreathing}
}

func ValidSelfCareTask(task string) bool {
	for _, t := range SelfCareTaskTypes() {
		if t == task {
			return true
		}
	}
	return false
}

type SelfCareCompletion struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_selfcare_user_completed,priority:1" json:"userId"`
	TaskType string    `gorm:"not null" json:"taskType"`

	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CompletedAt time.Time `gorm:"not null;index:idx_selfcare_user_completed,priority:2" json:"completedAt"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (SelfCareCompletion) TableName() string { return "self_care_completion" }

func (s *SelfCareCompletion) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = tx.Statement.DB.NowFunc()
	}
	if s.CompletedAt.IsZero() {
		s.CompletedAt = s.CreatedAt
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.CompletedAt = s.CompletedAt.UTC()
	return nil
}
