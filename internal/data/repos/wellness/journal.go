package wellness

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type JournalRepo interface {
	Create(dbc dbctx.Context, entry *types.JournalEntry) (*types.JournalEntry, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.JournalEntry, error)
	ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.JournalEntry, error)
	ExistsInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error)
	ListAll(dbc dbctx.Context, limit int) ([]*types.JournalEntry, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
	DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error
}

type journalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJournalRepo(db *gorm.DB, baseLog *logger.Logger) JournalRepo {
	return &journalRepo{db: db, log: baseLog.With("repo", "JournalRepo")}
}

func (r *journalRepo) Create(dbc dbctx.Context, entry *types.JournalEntry) (*types.JournalEntry, error) {
	if err := dbc.DB(r.db).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *journalRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.JournalEntry, error) {
	var out []*types.JournalEntry
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(clampLimit(limit, 100, 1000)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListInRange buckets on created_at, the moment the entry was written.
func (r *journalRepo) ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.JournalEntry, error) {
	var out []*types.JournalEntry
	if err := userWindow(dbc.DB(r.db), userID, "created_at", from, to).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *journalRepo) ExistsInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	if err := userWindow(dbc.DB(r.db).Model(&types.JournalEntry{}), userID, "created_at", from, to).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *journalRepo) ListAll(dbc dbctx.Context, limit int) ([]*types.JournalEntry, error) {
	var out []*types.JournalEntry
	if err := dbc.DB(r.db).
		Order("created_at DESC").
		Limit(clampLimit(limit, 500, 5000)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *journalRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.JournalEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *journalRepo) DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error {
	return dbc.DB(r.db).Where("user_id = ?", userID).Delete(&types.JournalEntry{}).Error
}
