package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

// MaxLoggedAtSkew is how far ahead of the server clock loggedAt may be.
const MaxLoggedAtSkew = 5 * time.Minute

type MoodInput struct {
	MoodLevel         int        `json:"moodLevel" validate:"required,min=1,max=6"`
	Emoji             string     `json:"emoji" validate:"required"`
	MoodDescription   string     `json:"moodDescription" validate:"required"`
	MoodDuration      string     `json:"moodDuration" validate:"required"`
	ThoughtPatterns   string     `json:"thoughtPatterns" validate:"required"`
	StressLevel       string     `json:"stressLevel" validate:"required"`
	EnergyLevel       int        `json:"energyLevel" validate:"required,min=1,max=10"`
	Activity          string     `json:"activity" validate:"required"`
	Location          string     `json:"location" validate:"required"`
	SocialInteraction string     `json:"socialInteraction" validate:"required"`
	TimeOfDay         string     `json:"timeOfDay" validate:"required"`
	Notes             string     `json:"notes"`
	LoggedAt          *time.Time `json:"loggedAt"`
}

func (in *MoodInput) normalize() {
	for _, f := range []*string{
		&in.Emoji, &in.MoodDescription, &in.MoodDuration, &in.ThoughtPatterns, &in.StressLevel,
		&in.Activity, &in.Location, &in.SocialInteraction, &in.TimeOfDay, &in.Notes,
	} {
		*f = strings.TrimSpace(*f)
	}
}

type MoodService interface {
	Create(ctx context.Context, userID uuid.UUID, in MoodInput) (*types.MoodEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error)
}

type moodService struct {
	log      *logger.Logger
	repo     repos.MoodRepo
	notifier Notifier
	clock    Clock
}

func NewMoodService(log *logger.Logger, repo repos.MoodRepo, notifier Notifier, clock Clock) MoodService {
	return &moodService{
		log:      log.With("service", "MoodService"),
		repo:     repo,
		notifier: notifier,
		clock:    clock.orNow(),
	}
}

func (s *moodService) Create(ctx context.Context, userID uuid.UUID, in MoodInput) (*types.MoodEntry, error) {
	in.normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := s.clock()
	entry := &types.MoodEntry{
		UserID:            userID,
		MoodLevel:         in.MoodLevel,
		Emoji:             in.Emoji,
		MoodDescription:   in.MoodDescription,
		MoodDuration:      in.MoodDuration,
		ThoughtPatterns:   in.ThoughtPatterns,
		StressLevel:       in.StressLevel,
		EnergyLevel:       in.EnergyLevel,
		Activity:          in.Activity,
		Location:          in.Location,
		SocialInteraction: in.SocialInteraction,
		TimeOfDay:         in.TimeOfDay,
		Notes:             in.Notes,
		LoggedAt:          now,
		CreatedAt:         now,
	}
	if in.LoggedAt != nil && !in.LoggedAt.IsZero() {
		if in.LoggedAt.After(now.Add(MaxLoggedAtSkew)) {
			return nil, apierr.Validation("loggedAt")
		}
		entry.LoggedAt = in.LoggedAt.UTC()
	}
	created, err := s.repo.Create(dbctx.New(ctx), entry)
	if err != nil {
		s.log.Error("Mood create failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.notifier.ClearReminders(ctx, userID, types.NotificationMood)
	s.notifier.Emit(ctx, userID, types.NotificationMood, MsgMoodLogged, EmitOptions{})
	return created, nil
}

func (s *moodService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error) {
	return s.repo.ListByUser(dbctx.New(ctx), userID, limit)
}
