package care

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	domaincare "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/care"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type AppointmentRepo interface {
	Create(dbc dbctx.Context, appt *types.Appointment) (*types.Appointment, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Appointment, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Appointment, error)
	ListAll(dbc dbctx.Context) ([]*types.Appointment, error)
	// ListInRange returns the user's appointments scheduled in [from, to), any status.
	ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.Appointment, error)
	// ListActiveInRange returns pending or confirmed appointments scheduled in [from, to).
	ListActiveInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.Appointment, error)
	ExistsActiveInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error)
	// UpdateStatus moves id from `from` to `to` only if it is still in `from`.
	UpdateStatus(dbc dbctx.Context, id uuid.UUID, from, to types.AppointmentStatus) (bool, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
	DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error
}

type appointmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAppointmentRepo(db *gorm.DB, baseLog *logger.Logger) AppointmentRepo {
	return &appointmentRepo{db: db, log: baseLog.With("repo", "AppointmentRepo")}
}

func (r *appointmentRepo) Create(dbc dbctx.Context, appt *types.Appointment) (*types.Appointment, error) {
	if err := dbc.DB(r.db).Create(appt).Error; err != nil {
		return nil, err
	}
	return appt, nil
}

func (r *appointmentRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Appointment, error) {
	var out types.Appointment
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *appointmentRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Appointment, error) {
	var out []*types.Appointment
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *appointmentRepo) ListAll(dbc dbctx.Context) ([]*types.Appointment, error) {
	var out []*types.Appointment
	if err := dbc.DB(r.db).
		Order("scheduled_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *appointmentRepo) scheduled(q *gorm.DB, userID uuid.UUID, from, to time.Time) *gorm.DB {
	return q.
		Where("user_id = ?", userID).
		Where("scheduled_at >= ?", from.UTC()).
		Where("scheduled_at < ?", to.UTC())
}

func (r *appointmentRepo) ListInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.Appointment, error) {
	var out []*types.Appointment
	if err := r.scheduled(dbc.DB(r.db), userID, from, to).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *appointmentRepo) ListActiveInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) ([]*types.Appointment, error) {
	var out []*types.Appointment
	if err := r.scheduled(dbc.DB(r.db), userID, from, to).
		Where("status IN ?", domaincare.ActiveStatuses()).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *appointmentRepo) ExistsActiveInRange(dbc dbctx.Context, userID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	if err := r.scheduled(dbc.DB(r.db).Model(&types.Appointment{}), userID, from, to).
		Where("status IN ?", domaincare.ActiveStatuses()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepo) UpdateStatus(dbc dbctx.Context, id uuid.UUID, from, to types.AppointmentStatus) (bool, error) {
	res := dbc.DB(r.db).
		Model(&types.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *appointmentRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Appointment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *appointmentRepo) DeleteByUser(dbc dbctx.Context, userID uuid.UUID) error {
	return dbc.DB(r.db).Where("user_id = ?", userID).Delete(&types.Appointment{}).Error
}
