package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/ctxutil"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

type ProfilePictureInput struct {
	ProfilePicture string `json:"profilePicture" validate:"required,url,max=2048"`
}

type UserService interface {
	GetMe(dbc dbctx.Context) (*types.User, error)
	// GetByID lets callers read themselves; admins may read anyone.
	GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error)
	UpdateProfilePicture(dbc dbctx.Context, in ProfilePictureInput) (*types.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{log: log.With("service", "UserService"), userRepo: userRepo}
}

func requestUser(dbc dbctx.Context) (*ctxutil.RequestData, error) {
	rd := ctxutil.GetRequestData(dbc.Ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("request is not authenticated")
	}
	return rd, nil
}

func (us *userService) GetMe(dbc dbctx.Context) (*types.User, error) {
	rd, err := requestUser(dbc)
	if err != nil {
		return nil, err
	}
	return us.load(dbc, rd.UserID)
}

func (us *userService) GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error) {
	rd, err := requestUser(dbc)
	if err != nil {
		return nil, err
	}
	if rd.UserID != userID && rd.Role != types.RoleAdmin {
		us.log.Warn("User read denied", "user_id", rd.UserID, "target_id", userID)
		return nil, apierr.Forbidden("cannot read another user's profile")
	}
	return us.load(dbc, userID)
}

func (us *userService) load(dbc dbctx.Context, userID uuid.UUID) (*types.User, error) {
	u, err := us.userRepo.GetByID(dbc, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierr.NotFound("user")
	}
	return u, nil
}

func (us *userService) UpdateProfilePicture(dbc dbctx.Context, in ProfilePictureInput) (*types.User, error) {
	rd, err := requestUser(dbc)
	if err != nil {
		return nil, err
	}
	in.ProfilePicture = strings.TrimSpace(in.ProfilePicture)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if err := us.userRepo.UpdateProfilePicture(dbc, rd.UserID, in.ProfilePicture); err != nil {
		return nil, err
	}
	return us.load(dbc, rd.UserID)
}
