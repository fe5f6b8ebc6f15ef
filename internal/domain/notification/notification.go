package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Type string

const (
	TypeMood        Type = "mood"
	TypeJournal     Type = "journal"
	TypeSelfCare    Type = "selfcare"
	TypeAppointment Type = "appointment"
)

func ParseType(s string) (Type, bool) {
	switch t := Type(s); t {
	case TypeMood, TypeJournal, TypeSelfCare, TypeAppointment:
		return t, true
	}
	return "", false
}

// Notification is either a reminder (nudge, replaced when the user acts) or an
// acknowledgement of something the user just did.
type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_notification_user_created,priority:1" json:"userId"`

	Type       Type   `gorm:"type:varchar(16);not null;index" json:"type"`
	Message    string `gorm:"not null" json:"message"`
	IsReminder bool   `gorm:"not null;default:false" json:"isReminder"`
	Seen       bool   `gorm:"not null;default:false" json:"seen"`

	CreatedAt time.Time `gorm:"not null;index:idx_notification_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Notification) TableName() string { return "notification" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = tx.Statement.DB.NowFunc()
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return nil
}
