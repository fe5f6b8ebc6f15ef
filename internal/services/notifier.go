package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

// =========================
// Notification messages
// =========================

const (
	MsgMoodReminder        = "🌈 Don't forget to track your mood today."
	MsgJournalReminder     = "📝 Write in your journal today."
	MsgSelfCareReminder    = "🧘 Do one self-care activity today."
	MsgAppointmentToday    = "📅 You have an appointment today."
	MsgAppointmentUpcoming = "⏳ You have an appointment within the next 24 hours."

	MsgMoodLogged        = "✅ Mood logged. Thanks for checking in."
	MsgJournalSaved      = "✅ Journal entry saved."
	MsgSelfCareDone      = "✅ Self-care task completed: "
	MsgAppointmentBooked = "📅 Appointment request sent to "
)

type EmitOptions struct {
	IsReminder bool
}

// Notifier owns notification rows. Emit and ClearReminders are best-effort:
// failures are logged and never returned to the write path that triggered them.
type Notifier interface {
	Emit(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, opts EmitOptions)
	ClearReminders(ctx context.Context, userID uuid.UUID, kind types.NotificationType)
	MarkAllSeen(ctx context.Context, userID uuid.UUID) (int64, error)
	Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error)

	HasReminderSince(ctx context.Context, userID uuid.UUID, kind types.NotificationType, since time.Time) (bool, error)
	// EnsureReminder creates a reminder unless one of kind exists since `since`.
	// It reports whether a new row was written.
	EnsureReminder(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, since time.Time) (bool, error)
	// EnsureNotice is EnsureReminder deduplicated on the exact message, so
	// other reminders of the same kind do not suppress it.
	EnsureNotice(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, since time.Time) (bool, error)
}

type notifier struct {
	log   *logger.Logger
	repo  repos.NotificationRepo
	clock Clock
}

func NewNotifier(log *logger.Logger, repo repos.NotificationRepo, clock Clock) Notifier {
	return &notifier{
		log:   log.With("service", "Notifier"),
		repo:  repo,
		clock: clock.orNow(),
	}
}

func (n *notifier) Emit(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, opts EmitOptions) {
	if n == nil || userID == uuid.Nil {
		return
	}
	if _, err := n.create(ctx, userID, kind, message, opts.IsReminder); err != nil {
		n.log.Warn("Notification emit failed", "user_id", userID, "type", kind, "reminder", opts.IsReminder, "error", err)
	}
}

func (n *notifier) create(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, reminder bool) (*types.Notification, error) {
	return n.repo.Create(dbctx.New(ctx), &types.Notification{
		UserID:     userID,
		Type:       kind,
		Message:    message,
		IsReminder: reminder,
		CreatedAt:  n.clock(),
	})
}

func (n *notifier) ClearReminders(ctx context.Context, userID uuid.UUID, kind types.NotificationType) {
	if n == nil || userID == uuid.Nil {
		return
	}
	removed, err := n.repo.DeleteReminders(dbctx.New(ctx), userID, kind)
	if err != nil {
		n.log.Warn("Clearing reminders failed", "user_id", userID, "type", kind, "error", err)
		return
	}
	if removed > 0 {
		n.log.Debug("Reminders cleared", "user_id", userID, "type", kind, "count", removed)
	}
}

func (n *notifier) MarkAllSeen(ctx context.Context, userID uuid.UUID) (int64, error) {
	return n.repo.MarkAllSeen(dbctx.New(ctx), userID)
}

func (n *notifier) Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error {
	ok, err := n.repo.DeleteForUser(dbctx.New(ctx), userID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		return apierr.NotFound("notification")
	}
	return nil
}

func (n *notifier) List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	return n.repo.ListByUser(dbctx.New(ctx), userID, limit)
}

func (n *notifier) HasReminderSince(ctx context.Context, userID uuid.UUID, kind types.NotificationType, since time.Time) (bool, error) {
	return n.repo.ExistsReminderSince(dbctx.New(ctx), userID, kind, since)
}

func (n *notifier) EnsureReminder(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, since time.Time) (bool, error) {
	exists, err := n.HasReminderSince(ctx, userID, kind, since)
	if err != nil {
		return false, err
	}
	return n.remindUnless(ctx, exists, userID, kind, message)
}

func (n *notifier) EnsureNotice(ctx context.Context, userID uuid.UUID, kind types.NotificationType, message string, since time.Time) (bool, error) {
	exists, err := n.repo.ExistsReminderMessageSince(dbctx.New(ctx), userID, kind, message, since)
	if err != nil {
		return false, err
	}
	return n.remindUnless(ctx, exists, userID, kind, message)
}

func (n *notifier) remindUnless(ctx context.Context, exists bool, userID uuid.UUID, kind types.NotificationType, message string) (bool, error) {
	if exists {
		return false, nil
	}
	if _, err := n.create(ctx, userID, kind, message, true); err != nil {
		return false, err
	}
	return true, nil
}
