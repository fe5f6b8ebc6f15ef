package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

type JournalInput struct {
	Content   string     `json:"content" validate:"required"`
	EntryType string     `json:"entryType"`
	Font      string     `json:"font"`
	Theme     string     `json:"theme"`
	Language  string     `json:"language"`
	EntryDate *time.Time `json:"entryDate"`
}

type JournalService interface {
	Create(ctx context.Context, userID uuid.UUID, in JournalInput) (*types.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.JournalEntry, error)
}

type journalService struct {
	log      *logger.Logger
	repo     repos.JournalRepo
	notifier Notifier
	clock    Clock
}

func NewJournalService(log *logger.Logger, repo repos.JournalRepo, notifier Notifier, clock Clock) JournalService {
	return &journalService{
		log:      log.With("service", "JournalService"),
		repo:     repo,
		notifier: notifier,
		clock:    clock.orNow(),
	}
}

func (s *journalService) Create(ctx context.Context, userID uuid.UUID, in JournalInput) (*types.JournalEntry, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	entry := &types.JournalEntry{
		UserID:    userID,
		Content:   in.Content,
		EntryType: strings.TrimSpace(in.EntryType),
		Font:      strings.TrimSpace(in.Font),
		Theme:     strings.TrimSpace(in.Theme),
		Language:  strings.TrimSpace(in.Language),
		CreatedAt: s.clock(),
	}
	if in.EntryDate != nil && !in.EntryDate.IsZero() {
		entry.EntryDate = in.EntryDate.UTC()
	}
	created, err := s.repo.Create(dbctx.New(ctx), entry)
	if err != nil {
		s.log.Error("Journal create failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.notifier.ClearReminders(ctx, userID, types.NotificationJournal)
	s.notifier.Emit(ctx, userID, types.NotificationJournal, MsgJournalSaved, EmitOptions{})
	return created, nil
}

func (s *journalService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.JournalEntry, error) {
	return s.repo.ListByUser(dbctx.New(ctx), userID, limit)
}
