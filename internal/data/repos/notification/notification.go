package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type NotificationRepo interface {
	Create(dbc dbctx.Context, n *types.Notification) (*types.Notification, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.Notification, error)
	// ExistsReminderSince reports a reminder of kind created at or after since.
	ExistsReminderSince(dbc dbctx.Context, userID uuid.UUID, kind types.NotificationType, since time.Time) (bool, error)
	// ExistsReminderMessageSince narrows ExistsReminderSince to one message.
	ExistsReminderMessageSince(dbc dbctx.Context, userID uuid.UUID, kind types.NotificationType, message string, since time.Time) (bool, error)
	DeleteReminders(dbc dbctx.Context, userID uuid.UUID, kind types.NotificationType) (int64, error)
	MarkAllSeen(dbc dbctx.Context, userID uuid.UUID) (int64, error)
	DeleteForUser(dbc dbctx.Context, userID, id uuid.UUID) (bool, error)
	DeleteAllForUser(dbc dbctx.Context, userID uuid.UUID) error
}

type notificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	return &notificationRepo{db: db, log: baseLog.With("repo", "NotificationRepo")}
}

func (r *notificationRepo) Create(dbc dbctx.Context, n *types.Notification) (*types.Notification, error) {
	if err := dbc.DB(r.db).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *notificationRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	switch {
	case limit <= 0:
		limit = 50
	case limit > 200:
		limit = 200
	}
	var out []*types.Notification
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *notificationRepo) ExistsReminderSince(dbc dbctx.Context, userID uuid.UUID, kind types.NotificationType, since time.Time) (bool, error) {
	var count int64
	if err := dbc.DB(r.db).
		Model(&types.Notification{}).
		Where("user_id = ? AND type = ? AND is_reminder = ?", userID, kind, true).
		Where("created_at >= ?", since.UTC()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepo) ExistsReminderMessageSince(dbc dbctx.Context, userID uuid.UUID, kind types.NotificationType, message string, since time.Time) (bool, error) {
	var count int64
	if err := dbc.DB(r.db).
		Model(&types.Notification{}).
		Where("user_id = ? AND type = ? AND is_reminder = ? AND message = ?", userID, kind, true, message).
		Where("created_at >= ?", since.UTC()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepo) DeleteReminders(dbc dbctx.Context, userID uuid.UUID, kind types.NotificationType) (int64, error) {
	res := dbc.DB(r.db).
		Where("user_id = ? AND type = ? AND is_reminder = ?", userID, kind, true).
		Delete(&types.Notification{})
	return res.RowsAffected, res.Error
}

func (r *notificationRepo) MarkAllSeen(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	res := dbc.DB(r.db).
		Model(&types.Notification{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Update("seen", true)
	return res.RowsAffected, res.Error
}

// DeleteForUser removes id only when userID owns it.
func (r *notificationRepo) DeleteForUser(dbc dbctx.Context, userID, id uuid.UUID) (bool, error) {
	res := dbc.DB(r.db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Notification{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *notificationRepo) DeleteAllForUser(dbc dbctx.Context, userID uuid.UUID) error {
	return dbc.DB(r.db).Where("user_id = ?", userID).Delete(&types.Notification{}).Error
}
