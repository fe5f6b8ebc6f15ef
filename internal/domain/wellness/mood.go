package wellness

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinMoodLevel = 1
	MaxMoodLevel = 6
)

type MoodEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_user_logged,priority:1;index:idx_mood_user_created,priority:1" json:"userId"`

	MoodLevel         int    `gorm:"not null" json:"moodLevel"`
	Emoji             string `gorm:"not null" json:"emoji"`
	MoodDescription   string `gorm:"not null" json:"moodDescription"`
	MoodDuration      string `gorm:"not null" json:"moodDuration"`
	ThoughtPatterns   string `gorm:"not null" json:"thoughtPatterns"`
	StressLevel       string `gorm:"not null" json:"stressLevel"`
	EnergyLevel       int    `gorm:"not null" json:"energyLevel"`
	Activity          string `gorm:"not null" json:"activity"`
	Location          string `gorm:"not null" json:"location"`
	SocialInteraction string `gorm:"not null" json:"socialInteraction"`
	TimeOfDay         string `gorm:"not null" json:"timeOfDay"`
	Notes             string `json:"notes"`

	// LoggedAt is the analytics timestamp; it falls back to creation time.
	LoggedAt  time.Time `gorm:"not null;index:idx_mood_user_logged,priority:2" json:"loggedAt"`
	CreatedAt time.Time `gorm:"not null;index:idx_mood_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (MoodEntry) TableName() string { return "mood_entry" }

func (m *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = tx.Statement.DB.NowFunc()
	}
	if m.LoggedAt.IsZero() {
		m.LoggedAt = m.CreatedAt
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.LoggedAt = m.LoggedAt.UTC()
	return nil
}
