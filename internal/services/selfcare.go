package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/wellness"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

type SelfCareInput struct {
	TaskType string `json:"taskType" validate:"required,oneof=hydration exercise meditation breathing"`
}

type SelfCareTaskStatus struct {
	TaskType    string     `json:"taskType"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

type SelfCareService interface {
	Complete(ctx context.Context, userID uuid.UUID, in SelfCareInput) (*types.SelfCareCompletion, error)
	// Today lists every task type with its completion state for the current local day.
	Today(ctx context.Context, userID uuid.UUID) ([]SelfCareTaskStatus, error)
}

type selfCareService struct {
	log      *logger.Logger
	repo     repos.SelfCareRepo
	notifier Notifier
	zone     localday.Zone
	clock    Clock
}

func NewSelfCareService(log *logger.Logger, repo repos.SelfCareRepo, notifier Notifier, zone localday.Zone, clock Clock) SelfCareService {
	return &selfCareService{
		log:      log.With("service", "SelfCareService"),
		repo:     repo,
		notifier: notifier,
		zone:     zone,
		clock:    clock.orNow(),
	}
}

func (s *selfCareService) Complete(ctx context.Context, userID uuid.UUID, in SelfCareInput) (*types.SelfCareCompletion, error) {
	in.TaskType = strings.ToLower(strings.TrimSpace(in.TaskType))
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := s.clock()
	day := s.zone.Day(now)
	row, err := s.repo.MarkCompleted(dbctx.New(ctx), userID, in.TaskType, now, day.From, day.To)
	if err != nil {
		s.log.Error("Self-care completion failed", "user_id", userID, "task", in.TaskType, "error", err)
		return nil, err
	}

	s.notifier.ClearReminders(ctx, userID, types.NotificationSelfCare)
	s.notifier.Emit(ctx, userID, types.NotificationSelfCare, MsgSelfCareDone+in.TaskType, EmitOptions{})
	return row, nil
}

func (s *selfCareService) Today(ctx context.Context, userID uuid.UUID) ([]SelfCareTaskStatus, error) {
	day := s.zone.Day(s.clock())
	rows, err := s.repo.ListInRange(dbctx.New(ctx), userID, day.From, day.To)
	if err != nil {
		return nil, err
	}
	done := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		done[r.TaskType] = r.CompletedAt
	}
	out := make([]SelfCareTaskStatus, 0, len(wellness.SelfCareTaskTypes()))
	for _, task := range wellness.SelfCareTaskTypes() {
		st := SelfCareTaskStatus{TaskType: task}
		if at, ok := done[task]; ok {
			at := at
			st.Completed = true
			st.CompletedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}
