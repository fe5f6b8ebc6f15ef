package wellness

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultJournalFont     = "Segoe UI"
	DefaultJournalTheme    = "lightblue"
	DefaultJournalLanguage = "en"
)

type JournalEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_journal_user_created,priority:1" json:"userId"`

	Content   string `gorm:"type:text;not null" json:"content"`
	EntryType string `json:"entryType"`

	// Presentation only.
	Font     string `json:"font"`
	Theme    string `json:"theme"`
	Language string `json:"language"`

	// EntryDate is the date the user filed the entry under; creation time when omitted.
	EntryDate time.Time `gorm:"not null" json:"entryDate"`
	CreatedAt time.Time `gorm:"not null;index:idx_journal_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (JournalEntry) TableName() string { return "journal_entry" }

func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = tx.Statement.DB.NowFunc()
	}
	if j.Font == "" {
		j.Font = DefaultJournalFont
	}
	if j.Theme == "" {
		j.Theme = DefaultJournalTheme
	}
	if j.Language == "" {
		j.Language = DefaultJournalLanguage
	}
	if j.EntryDate.IsZero() {
		j.EntryDate = j.CreatedAt
	}
	j.CreatedAt = j.CreatedAt.UTC()
	j.EntryDate = j.EntryDate.UTC()
	return nil
}
