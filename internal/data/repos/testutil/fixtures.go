package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Name:     "Test User",
		Email:    email,
		Password: "pw",
		Role:     types.RoleUser,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSupportPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.SupportPerson {
	tb.Helper()
	p := &types.SupportPerson{
		Name:           name,
		Title:          "Counselor",
		Specialization: "Anxiety",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed support person: %v", err)
	}
	return p
}

func SeedMood(tb testing.TB, ctx context.Context, tx *gorm.DB, u *types.User, level int, at time.Time) *types.MoodEntry {
	tb.Helper()
	m := &types.MoodEntry{
		UserID:            u.ID,
		MoodLevel:         level,
		Emoji:             "🙂",
		MoodDescription:   "ok",
		MoodDuration:      "hours",
		ThoughtPatterns:   "neutral",
		StressLevel:       "low",
		EnergyLevel:       3,
		Activity:          "work",
		Location:          "home",
		SocialInteraction: "alone",
		TimeOfDay:         "morning",
		LoggedAt:          at.UTC(),
		CreatedAt:         at.UTC(),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mood: %v", err)
	}
	return m
}

func SeedJournal(tb testing.TB, ctx context.Context, tx *gorm.DB, u *types.User, at time.Time) *types.JournalEntry {
	tb.Helper()
	j := &types.JournalEntry{
		UserID:    u.ID,
		Content:   "today was fine",
		CreatedAt: at.UTC(),
	}
	if err := tx.WithContext(ctx).Create(j).Error; err != nil {
		tb.Fatalf("seed journal: %v", err)
	}
	return j
}

func SeedSelfCare(tb testing.TB, ctx context.Context, tx *gorm.DB, u *types.User, task string, at time.Time) *types.SelfCareCompletion {
	tb.Helper()
	s := &types.SelfCareCompletion{
		UserID:      u.ID,
		TaskType:    task,
		Completed:   true,
		CompletedAt: at.UTC(),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed selfcare: %v", err)
	}
	return s
}

func SeedAppointment(tb testing.TB, ctx context.Context, tx *gorm.DB, u *types.User, p *types.SupportPerson, at time.Time, status types.AppointmentStatus) *types.Appointment {
	tb.Helper()
	a := &types.Appointment{
		UserID:          u.ID,
		SupportPersonID: p.ID,
		Provider:        types.ProviderSnapshot{Name: p.Name, Type: p.Title},
		ScheduledAt:     at.UTC(),
		Note:            "check-in",
		Status:          status,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed appointment: %v", err)
	}
	return a
}

func PtrTime(v time.Time) *time.Time { return &v }
