package wellness

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type MoodRepo interface {
	Create(dbc dbctx.Context, entry *types.MoodEntry) (*types.MoodEntry, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.MoodEntry, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error)
	ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.MoodEntry, error)
	ExistsInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error)
	ListAll(dbc dbctx.Context, limit int) ([]*types.MoodEntry, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
	DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error
}

type moodRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodRepo(db *gorm.DB, baseLog *logger.Logger) MoodRepo {
	return &moodRepo{db: db, log: baseLog.With("repo", "MoodRepo")}
}

func (r *moodRepo) Create(dbc dbctx.Context, entry *types.MoodEntry) (*types.MoodEntry, error) {
	if err := dbc.DB(r.db).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *moodRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.MoodEntry, error) {
	var out types.MoodEntry
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *moodRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error) {
	var out []*types.MoodEntry
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(clampLimit(limit, 100, 1000)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *moodRepo) ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.MoodEntry, error) {
	var out []*types.MoodEntry
	if err := userWindow(dbc.DB(r.db), userID, "logged_at", from, to).
		Order("logged_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsInRange keys off created_at: a back-dated entry written today still
// counts as checking in today.
func (r *moodRepo) ExistsInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	if err := userWindow(dbc.DB(r.db).Model(&types.MoodEntry{}), userID, "created_at", from, to).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *moodRepo) ListAll(dbc dbctx.Context, limit int) ([]*types.MoodEntry, error) {
	var out []*types.MoodEntry
	if err := dbc.DB(r.db).
		Order("logged_at DESC").
		Limit(clampLimit(limit, 500, 5000)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *moodRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.MoodEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *moodRepo) DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error {
	return dbc.DB(r.db).Where("user_id = ?", userID).Delete(&types.MoodEntry{}).Error
}
