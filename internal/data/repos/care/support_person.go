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

type SupportPersonRepo interface {
	List(dbc dbctx.Context) ([]*types.SupportPerson, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SupportPerson, error)
	// Upsert inserts people by name, refreshing title, bio and the rest on conflict.
	Upsert(dbc dbctx.Context, people []*types.SupportPerson) (int, error)
}

type supportPersonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupportPersonRepo(db *gorm.DB, baseLog *logger.Logger) SupportPersonRepo {
	return &supportPersonRepo{db: db, log: baseLog.With("repo", "SupportPersonRepo")}
}

func (r *supportPersonRepo) List(dbc dbctx.Context) ([]*types.SupportPerson, error) {
	var out []*types.SupportPerson
	if err := dbc.DB(r.db).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *supportPersonRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SupportPerson, error) {
	var out types.SupportPerson
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *supportPersonRepo) Upsert(dbc dbctx.Context, people []*types.SupportPerson) (int, error) {
	if len(people) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "specialization", "bio", "photo_url", "updated_at"}),
		}).
		Create(&people)
	if res.Error != nil {
		return 0, res.Error
	}
	return len(people), nil
}
