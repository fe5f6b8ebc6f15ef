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

type SelfCareRepo interface {
	// MarkCompleted records task as done within the day [dayFrom, dayTo). A second
	// completion on the same day updates the existing row instead of adding one.
	MarkCompleted(dbc dbctx.Context, userID uuid.UUID, task string, at, dayFrom, dayTo time.Time) (*types.SelfCareCompletion, error)
	ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.SelfCareCompletion, error)
	ExistsInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error)
	DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error
}

type selfCareRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSelfCareRepo(db *gorm.DB, baseLog *logger.Logger) SelfCareRepo {
	return &selfCareRepo{db: db, log: baseLog.With("repo", "SelfCareRepo")}
}

func (r *selfCareRepo) MarkCompleted(dbc dbctx.Context, userID uuid.UUID, task string, at, dayFrom, dayTo time.Time) (*types.SelfCareCompletion, error) {
	var out *types.SelfCareCompletion
	err := dbc.DB(r.db).Transaction(func(tx *gorm.DB) error {
		var existing types.SelfCareCompletion
		err := userWindow(tx, userID, "completed_at", dayFrom, dayTo).
			Where("task_type = ?", task).
			Order("completed_at ASC").
			First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := &types.SelfCareCompletion{
				UserID:      userID,
				TaskType:    task,
				Completed:   true,
				CompletedAt: at.UTC(),
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			out = row
			return nil
		case err != nil:
			return err
		}
		existing.Completed = true
		existing.CompletedAt = at.UTC()
		if err := tx.Model(&existing).Updates(map[string]any{
			"completed":    true,
			"completed_at": existing.CompletedAt,
		}).Error; err != nil {
			return err
		}
		out = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *selfCareRepo) ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.SelfCareCompletion, error) {
	var out []*types.SelfCareCompletion
	if err := userWindow(dbc.DB(r.db), userID, "completed_at", from, to).
		Where("completed = ?", true).
		Order("completed_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *selfCareRepo) ExistsInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	if err := userWindow(dbc.DB(r.db).Model(&types.SelfCareCompletion{}), userID, "completed_at", from, to).
		Where("completed = ?", true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *selfCareRepo) DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error {
	return dbc.DB(r.db).Where("user_id = ?", userID).Delete(&types.SelfCareCompletion{}).Error
}
