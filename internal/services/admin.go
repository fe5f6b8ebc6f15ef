package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

// AdminService covers moderation. Callers must already hold the admin role.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*types.User, error)
	SetRole(ctx context.Context, userID uuid.UUID, role string) (*types.User, error)
	// DeleteUser removes the user and everything they own in one transaction.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	ListJournals(ctx context.Context, limit int) ([]*types.JournalEntry, error)
	DeleteJournal(ctx context.Context, id uuid.UUID) error
	ListMoods(ctx context.Context, limit int) ([]*types.MoodEntry, error)
	DeleteMood(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	db            *gorm.DB
	log           *logger.Logger
	users         repos.UserRepo
	moods         repos.MoodRepo
	journals      repos.JournalRepo
	selfCare      repos.SelfCareRepo
	appointments  repos.AppointmentRepo
	sosPlans      repos.SOSPlanRepo
	notifications repos.NotificationRepo
}

func NewAdminService(
	db *gorm.DB,
	log *logger.Logger,
	users repos.UserRepo,
	moods repos.MoodRepo,
	journals repos.JournalRepo,
	selfCare repos.SelfCareRepo,
	appointments repos.AppointmentRepo,
	sosPlans repos.SOSPlanRepo,
	notifications repos.NotificationRepo,
) AdminService {
	return &adminService{
		db:            db,
		log:           log.With("service", "AdminService"),
		users:         users,
		moods:         moods,
		journals:      journals,
		selfCare:      selfCare,
		appointments:  appointments,
		sosPlans:      sosPlans,
		notifications: notifications,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]*types.User, error) {
	return s.users.ListAll(dbctx.New(ctx))
}

func (s *adminService) SetRole(ctx context.Context, userID uuid.UUID, role string) (*types.User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !types.ValidRole(role) {
		return nil, apierr.Validation("role")
	}
	dbc := dbctx.New(ctx)
	ok, err := s.users.UpdateRole(dbc, userID, role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.NotFound("user")
	}
	s.log.Info("User role changed", "user_id", userID, "role", role)
	return s.users.GetByID(dbc, userID)
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inner := dbctx.Context{Ctx: ctx, Tx: tx}
		ok, err := s.users.Delete(inner, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("user")
		}
		for _, del := range []func(dbctx.Context, uuid.UUID) error{
			s.moods.DeleteByUser,
			s.journals.DeleteByUser,
			s.selfCare.DeleteByUser,
			s.appointments.DeleteByUser,
			s.notifications.DeleteAllForUser,
		} {
			if err := del(inner, userID); err != nil {
				return err
			}
		}
		if _, err := s.sosPlans.DeleteByUser(inner, userID); err != nil {
			return err
		}
		s.log.Info("User removed with owned records", "user_id", userID)
		return nil
	})
}

func (s *adminService) ListJournals(ctx context.Context, limit int) ([]*types.JournalEntry, error) {
	return s.journals.ListAll(dbctx.New(ctx), limit)
}

func (s *adminService) DeleteJournal(ctx context.Context, id uuid.UUID) error {
	ok, err := s.journals.Delete(dbctx.New(ctx), id)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.NotFound("journal entry")
	}
	return nil
}

func (s *adminService) ListMoods(ctx context.Context, limit int) ([]*types.MoodEntry, error) {
	return s.moods.ListAll(dbctx.New(ctx), limit)
}

func (s *adminService) DeleteMood(ctx context.Context, id uuid.UUID) error {
	ok, err := s.moods.Delete(dbctx.New(ctx), id)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.NotFound("mood entry")
	}
	return nil
}
