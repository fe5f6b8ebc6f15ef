package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/care"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

const (
	DefaultBookingStartHour = 16
	DefaultBookingEndHour   = 22
)

type BookAppointmentInput struct {
	SupportPersonID string     `json:"supportPersonId" validate:"required,uuid"`
	ScheduledAt     *time.Time `json:"scheduledAt" validate:"required"`
	Note            string     `json:"note"`
}

type AppointmentService interface {
	Book(ctx context.Context, userID uuid.UUID, in BookAppointmentInput) (*types.Appointment, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error)
	ListAll(ctx context.Context) ([]*types.Appointment, error)
	// Cancel is the owner's only transition.
	Cancel(ctx context.Context, userID, appointmentID uuid.UUID) (*types.Appointment, error)
	SetStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*types.Appointment, error)
	Delete(ctx context.Context, appointmentID uuid.UUID) error
}

type AppointmentConfig struct {
	Zone             localday.Zone
	BookingStartHour int
	BookingEndHour   int
	Clock            Clock
}

type appointmentService struct {
	log       *logger.Logger
	repo      repos.AppointmentRepo
	people    repos.SupportPersonRepo
	notifier  Notifier
	zone      localday.Zone
	startHour int
	endHour   int
	clock     Clock
}

func NewAppointmentService(
	log *logger.Logger,
	repo repos.AppointmentRepo,
	people repos.SupportPersonRepo,
	notifier Notifier,
	cfg AppointmentConfig,
) AppointmentService {
	start, end := cfg.BookingStartHour, cfg.BookingEndHour
	if start < 0 || end > 24 || start >= end {
		start, end = DefaultBookingStartHour, DefaultBookingEndHour
	}
	return &appointmentService{
		log:       log.With("service", "AppointmentService"),
		repo:      repo,
		people:    people,
		notifier:  notifier,
		zone:      cfg.Zone,
		startHour: start,
		endHour:   end,
		clock:     cfg.Clock.orNow(),
	}
}

func (s *appointmentService) Book(ctx context.Context, userID uuid.UUID, in BookAppointmentInput) (*types.Appointment, error) {
	in.SupportPersonID = strings.TrimSpace(in.SupportPersonID)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	at := in.ScheduledAt.UTC()
	if !at.After(s.clock()) {
		return nil, bookingError("scheduledAt", "appointment must be scheduled in the future")
	}
	if h := s.zone.Hour(at); h < s.startHour || h >= s.endHour {
		return nil, bookingError("scheduledAt", fmt.Sprintf("appointments can only be booked between %02d:00 and %02d:00 (%s)", s.startHour, s.endHour, s.zone.Name()))
	}

	personID := uuid.MustParse(in.SupportPersonID)
	person, err := s.people.GetByID(dbctx.New(ctx), personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apierr.NotFound("support person")
	}

	appt, err := s.repo.Create(dbctx.New(ctx), &types.Appointment{
		UserID:          userID,
		SupportPersonID: person.ID,
		Provider:        types.ProviderSnapshot{Name: person.Name, Type: person.Title},
		ScheduledAt:     at,
		Note:            strings.TrimSpace(in.Note),
		Status:          types.AppointmentPending,
	})
	if err != nil {
		s.log.Error("Appointment create failed", "user_id", userID, "error", err)
		return nil, err
	}
	s.notifier.Emit(ctx, userID, types.NotificationAppointment, MsgAppointmentBooked+person.Name, EmitOptions{})
	return appt, nil
}

func bookingError(field, msg string) *apierr.Error {
	e := apierr.New(http.StatusBadRequest, apierr.CodeValidation, errors.New(msg))
	e.Fields = []string{field}
	return e
}

func (s *appointmentService) ListMine(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error) {
	return s.repo.ListByUser(dbctx.New(ctx), userID)
}

func (s *appointmentService) ListAll(ctx context.Context) ([]*types.Appointment, error) {
	return s.repo.ListAll(dbctx.New(ctx))
}

func (s *appointmentService) get(ctx context.Context, id uuid.UUID) (*types.Appointment, error) {
	appt, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apierr.NotFound("appointment")
	}
	return appt, nil
}

func (s *appointmentService) Cancel(ctx context.Context, userID, appointmentID uuid.UUID) (*types.Appointment, error) {
	appt, err := s.get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != userID {
		return nil, apierr.Forbidden("appointment belongs to another user")
	}
	return s.transition(ctx, appt, types.AppointmentCancelled)
}

func (s *appointmentService) SetStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*types.Appointment, error) {
	to, ok := care.ParseAppointmentStatus(strings.ToLower(strings.TrimSpace(status)))
	if !ok {
		return nil, apierr.Validation("status")
	}
	appt, err := s.get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, appt, to)
}

// transition applies one state-machine step and its reminder side effects.
func (s *appointmentService) transition(ctx context.Context, appt *types.Appointment, to types.AppointmentStatus) (*types.Appointment, error) {
	from := appt.Status
	if !from.CanTransitionTo(to) {
		return nil, apierr.Conflict(fmt.Sprintf("cannot move appointment from %s to %s", from, to))
	}
	ok, err := s.repo.UpdateStatus(dbctx.New(ctx), appt.ID, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.Conflict(fmt.Sprintf("appointment is no longer %s", from))
	}
	appt.Status = to
	s.log.Info("Appointment status changed", "appointment_id", appt.ID, "from", from, "to", to)

	switch to {
	case types.AppointmentConfirmed:
		now := s.clock()
		if !appt.ScheduledAt.Before(now) && appt.ScheduledAt.Before(now.Add(UpcomingWindow)) {
			if _, err := s.notifier.EnsureReminder(ctx, appt.UserID, types.NotificationAppointment, MsgAppointmentUpcoming, now.Add(-UpcomingQuietPeriod)); err != nil {
				s.log.Warn("Ensuring appointment reminder failed", "appointment_id", appt.ID, "error", err)
			}
		}
	case types.AppointmentDeclined, types.AppointmentCancelled:
		s.notifier.ClearReminders(ctx, appt.UserID, types.NotificationAppointment)
	}
	return appt, nil
}

func (s *appointmentService) Delete(ctx context.Context, appointmentID uuid.UUID) error {
	appt, err := s.get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if _, err := s.repo.Delete(dbctx.New(ctx), appt.ID); err != nil {
		return err
	}
	if appt.Status.Active() {
		s.notifier.ClearReminders(ctx, appt.UserID, types.NotificationAppointment)
	}
	return nil
}
