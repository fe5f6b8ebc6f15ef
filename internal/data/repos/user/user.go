package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetByIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.User, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error)
	GetByEmails(dbc dbctx.Context, userEmails []string) ([]*types.User, error)
	EmailExists(dbc dbctx.Context, userEmail string) (bool, error)
	ListIDs(dbc dbctx.Context) ([]uuid.UUID, error)
	ListAll(dbc dbctx.Context) ([]*types.User, error)
	UpdateRole(dbc dbctx.Context, userID uuid.UUID, role string) (bool, error)
	UpdateProfilePicture(dbc dbctx.Context, userID uuid.UUID, url string) error
	Delete(dbc dbctx.Context, userID uuid.UUID) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := dbc.DB(ur.db).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.User, error) {
	var results []*types.User
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := dbc.DB(ur.db).
		Where("id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID returns nil, nil when the user does not exist.
func (ur *userRepo) GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error) {
	var u types.User
	err := dbc.DB(ur.db).Where("id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *userRepo) GetByEmails(dbc dbctx.Context, userEmails []string) ([]*types.User, error) {
	var results []*types.User
	if len(userEmails) == 0 {
		return results, nil
	}
	normalized := make([]string, 0, len(userEmails))
	for _, e := range userEmails {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(e)))
	}
	if err := dbc.DB(ur.db).
		Where("email IN ?", normalized).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) EmailExists(dbc dbctx.Context, userEmail string) (bool, error) {
	var count int64
	if err := dbc.DB(ur.db).
		Model(&types.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(userEmail))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) ListIDs(dbc dbctx.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := dbc.DB(ur.db).
		Model(&types.User{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (ur *userRepo) ListAll(dbc dbctx.Context) ([]*types.User, error) {
	var results []*types.User
	if err := dbc.DB(ur.db).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) UpdateRole(dbc dbctx.Context, userID uuid.UUID, role string) (bool, error) {
	res := dbc.DB(ur.db).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("role", role)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (ur *userRepo) UpdateProfilePicture(dbc dbctx.Context, userID uuid.UUID, url string) error {
	return dbc.DB(ur.db).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("profile_picture", url).Error
}

func (ur *userRepo) Delete(dbc dbctx.Context, userID uuid.UUID) (bool, error) {
	res := dbc.DB(ur.db).Where("id = ?", userID).Delete(&types.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
