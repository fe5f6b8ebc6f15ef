package care

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultSOSPlanTitle = "My SOS Plan"

type SOSStep struct {
	Order int    `json:"order"`
	Text  string `json:"text"`
}

type SOSContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// SOSPlan is the single crisis plan a user keeps; one row per user.
type SOSPlan struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`

	Title       string                          `gorm:"not null" json:"title"`
	Steps       datatypes.JSONSlice[SOSStep]    `json:"steps"`
	Contacts    datatypes.JSONSlice[SOSContact] `json:"contacts"`
	SafetyTools datatypes.JSONSlice[string]     `json:"safetyTools"`
	Notes       string                          `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (SOSPlan) TableName() string { return "sos_plan" }

func (p *SOSPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
