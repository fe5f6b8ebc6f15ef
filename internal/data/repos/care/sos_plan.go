package care

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type SOSPlanRepo interface {
	GetByUser(dbc dbctx.Context, userID uuid.UUID) (*types.SOSPlan, error)
	// Upsert keeps exactly one plan per user, replacing its contents.
	Upsert(dbc dbctx.Context, plan *types.SOSPlan) (*types.SOSPlan, error)
	DeleteByUser(dbc dbctx.Context, userID uuid.UUID) (bool, error)
}

type sosPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSOSPlanRepo(db *gorm.DB, baseLog *logger.Logger) SOSPlanRepo {
	return &sosPlanRepo{db: db, log: baseLog.With("repo", "SOSPlanRepo")}
}

func (r *sosPlanRepo) GetByUser(dbc dbctx.Context, userID uuid.UUID) (*types.SOSPlan, error) {
	var out types.SOSPlan
	err := dbc.DB(r.db).Where("user_id = ?", userID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sosPlanRepo) Upsert(dbc dbctx.Context, plan *types.SOSPlan) (*types.SOSPlan, error) {
	if err := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "steps", "contacts", "safety_tools", "notes", "updated_at"}),
		}).
		Create(plan).Error; err != nil {
		return nil, err
	}
	return r.GetByUser(dbc, plan.UserID)
}

func (r *sosPlanRepo) DeleteByUser(dbc dbctx.Context, userID uuid.UUID) (bool, error) {
	res := dbc.DB(r.db).Where("user_id = ?", userID).Delete(&types.SOSPlan{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
