package care

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportPerson struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"not null;uniqueIndex" json:"name" yaml:"name"`
	Title          string    `gorm:"not null" json:"title" yaml:"title"`
	Specialization string    `json:"specialization" yaml:"specialization"`
	Bio            string    `gorm:"type:text" json:"bio" yaml:"bio"`
	PhotoURL       string    `json:"photoUrl" yaml:"photo_url"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt" yaml:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt" yaml:"-"`
}

func (SupportPerson) TableName() string { return "support_person" }

func (p *SupportPerson) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
