package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/observability"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

const DefaultStoreTimeout = 5 * time.Second

type DayCounts struct {
	Moods        int `json:"moods"`
	Journals     int `json:"journals"`
	SelfCare     int `json:"selfCare"`
	Appointments int `json:"appointments"`
}

func (c DayCounts) Total() int {
	return c.Moods + c.Journals + c.SelfCare + c.Appointments
}

type HeatmapDay struct {
	Date   string    `json:"date"`
	Counts DayCounts `json:"counts"`
	Value  int       `json:"value"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	AvgMood float64 `json:"avgMood"`
}

type AnalyticsSummary struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Heatmap []HeatmapDay `json:"heatmap"`
	Trend   []TrendPoint `json:"trend"`
}

type DaySummary struct {
	MoodCount        int      `json:"moodCount"`
	AvgMood          *float64 `json:"avgMood"`
	JournalCount     int      `json:"journalCount"`
	SelfCareCount    int      `json:"selfCareCount"`
	AppointmentCount int      `json:"appointmentCount"`
}

type DayDetails struct {
	Date         string                      `json:"date"`
	Summary      DaySummary                  `json:"summary"`
	Moods        []*types.MoodEntry          `json:"moods"`
	Journals     []*types.JournalEntry       `json:"journals"`
	SelfCare     []*types.SelfCareCompletion `json:"selfCare"`
	Appointments []*types.Appointment        `json:"appointments"`
}

// AnalyticsService is read-only. Every call either reflects all four stores or fails.
type AnalyticsService interface {
	Summary(ctx context.Context, userID uuid.UUID, r localday.Range) (*AnalyticsSummary, error)
	// SummaryForDates takes YYYY-MM-DD dates in the app timezone; `to` is exclusive.
	// Empty from means Jan 1 of the current year, empty to means tomorrow (today included).
	SummaryForDates(ctx context.Context, userID uuid.UUID, from, to string) (*AnalyticsSummary, error)
	DayDetails(ctx context.Context, userID uuid.UUID, date string) (*DayDetails, error)
}

type AnalyticsConfig struct {
	Zone         localday.Zone
	StoreTimeout time.Duration
	Clock        Clock
}

type analyticsService struct {
	log          *logger.Logger
	moods        repos.MoodRepo
	journals     repos.JournalRepo
	selfCare     repos.SelfCareRepo
	appointments repos.AppointmentRepo
	zone         localday.Zone
	storeTimeout time.Duration
	clock        Clock
	tracer       trace.Tracer
}

func NewAnalyticsService(
	log *logger.Logger,
	moods repos.MoodRepo,
	journals repos.JournalRepo,
	selfCare repos.SelfCareRepo,
	appointments repos.AppointmentRepo,
	cfg AnalyticsConfig,
) AnalyticsService {
	timeout := cfg.StoreTimeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &analyticsService{
		log:          log.With("service", "AnalyticsService"),
		moods:        moods,
		journals:     journals,
		selfCare:     selfCare,
		appointments: appointments,
		zone:         cfg.Zone,
		storeTimeout: timeout,
		clock:        cfg.Clock.orNow(),
		tracer:       otel.Tracer("mindease/services/analytics"),
	}
}

type rangeRecords struct {
	moods        []*types.MoodEntry
	journals     []*types.JournalEntry
	selfCare     []*types.SelfCareCompletion
	appointments []*types.Appointment
}

// load queries the four stores concurrently, each under its own deadline.
// The first failure cancels the rest and fails the whole load.
func (s *analyticsService) load(ctx context.Context, kind string, userID uuid.UUID, r localday.Range) (recs *rangeRecords, err error) {
	start := time.Now()
	defer func() { observability.Current().ObserveAnalytics(kind, time.Since(start), err) }()

	out := &rangeRecords{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.query(gctx, "moods", func(qctx context.Context) (err error) {
			out.moods, err = s.moods.ListInRange(dbctx.New(qctx), userID, r.From, r.To)
			return err
		})
	})
	g.Go(func() error {
		return s.query(gctx, "journals", func(qctx context.Context) (err error) {
			out.journals, err = s.journals.ListInRange(dbctx.New(qctx), userID, r.From, r.To)
			return err
		})
	})
	g.Go(func() error {
		return s.query(gctx, "selfcare", func(qctx context.Context) (err error) {
			out.selfCare, err = s.selfCare.ListInRange(dbctx.New(qctx), userID, r.From, r.To)
			return err
		})
	})
	g.Go(func() error {
		return s.query(gctx, "appointments", func(qctx context.Context) (err error) {
			out.appointments, err = s.appointments.ListInRange(dbctx.New(qctx), userID, r.From, r.To)
			return err
		})
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierr.AggregationTimeout(err)
		}
		return nil, apierr.AggregationFailure(err)
	}
	return out, nil
}

func (s *analyticsService) query(ctx context.Context, store string, fn func(context.Context) error) error {
	qctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := fn(qctx); err != nil {
		if qctx.Err() != nil && !errors.Is(err, qctx.Err()) {
			err = fmt.Errorf("%w: %v", qctx.Err(), err)
		}
		return fmt.Errorf("%s store: %w", store, err)
	}
	return nil
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID, r localday.Range) (*AnalyticsSummary, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.summary", trace.WithAttributes(
		attribute.String("range.from", r.From.Format(time.RFC3339)),
		attribute.String("range.to", r.To.Format(time.RFC3339)),
		attribute.String("app.tz", s.zone.Name()),
	))
	defer span.End()

	if !r.From.Before(r.To) {
		err := apierr.Validation("from", "to")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	recs, err := s.load(ctx, "summary", userID, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation failed")
		s.log.Warn("Analytics summary failed", "user_id", userID, "error", err)
		return nil, err
	}

	days := map[string]*DayCounts{}
	bump := func(t time.Time) *DayCounts {
		key := s.zone.Key(t)
		c, ok := days[key]
		if !ok {
			c = &DayCounts{}
			days[key] = c
		}
		return c
	}

	type moodAcc struct{ sum, n int }
	moodByDay := map[string]*moodAcc{}
	for _, m := range recs.moods {
		bump(m.LoggedAt).Moods++
		key := s.zone.Key(m.LoggedAt)
		acc, ok := moodByDay[key]
		if !ok {
			acc = &moodAcc{}
			moodByDay[key] = acc
		}
		acc.sum += m.MoodLevel
		acc.n++
	}
	for _, j := range recs.journals {
		bump(j.CreatedAt).Journals++
	}
	for _, sc := range recs.selfCare {
		bump(sc.CompletedAt).SelfCare++
	}
	for _, a := range recs.appointments {
		bump(a.ScheduledAt).Appointments++
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &AnalyticsSummary{
		From:    s.zone.Key(r.From),
		To:      s.zone.Key(r.To),
		Heatmap: make([]HeatmapDay, 0, len(keys)),
		Trend:   make([]TrendPoint, 0, len(moodByDay)),
	}
	for _, k := range keys {
		c := *days[k]
		out.Heatmap = append(out.Heatmap, HeatmapDay{Date: k, Counts: c, Value: c.Total()})
		if acc, ok := moodByDay[k]; ok && acc.n > 0 {
			out.Trend = append(out.Trend, TrendPoint{Date: k, AvgMood: round2(float64(acc.sum) / float64(acc.n))})
		}
	}
	span.SetAttributes(attribute.Int("heatmap.days", len(out.Heatmap)))
	return out, nil
}

func (s *analyticsService) SummaryForDates(ctx context.Context, userID uuid.UUID, from, to string) (*AnalyticsSummary, error) {
	now := s.clock()
	var (
		r   localday.Range
		bad []string
	)
	if from == "" {
		r.From = s.zone.StartOfYear(now)
	} else if t, err := s.zone.ParseDate(from); err == nil {
		r.From = t
	} else {
		bad = append(bad, "from")
	}
	if to == "" {
		r.To = s.zone.Day(now).To
	} else if t, err := s.zone.ParseDate(to); err == nil {
		r.To = t
	} else {
		bad = append(bad, "to")
	}
	if len(bad) > 0 {
		return nil, apierr.Validation(bad...)
	}
	return s.Summary(ctx, userID, r)
}

func (s *analyticsService) DayDetails(ctx context.Context, userID uuid.UUID, date string) (*DayDetails, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.day_details", trace.WithAttributes(
		attribute.String("date", date),
		attribute.String("app.tz", s.zone.Name()),
	))
	defer span.End()

	if date == "" {
		return nil, apierr.Validation("date")
	}
	r, err := s.zone.DateDay(date)
	if err != nil {
		return nil, apierr.Validation("date")
	}

	recs, err := s.load(ctx, "day_details", userID, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation failed")
		s.log.Warn("Analytics day details failed", "user_id", userID, "date", date, "error", err)
		return nil, err
	}

	sort.SliceStable(recs.moods, func(i, j int) bool { return recs.moods[i].LoggedAt.Before(recs.moods[j].LoggedAt) })
	sort.SliceStable(recs.journals, func(i, j int) bool { return recs.journals[i].CreatedAt.Before(recs.journals[j].CreatedAt) })
	sort.SliceStable(recs.selfCare, func(i, j int) bool { return recs.selfCare[i].CompletedAt.Before(recs.selfCare[j].CompletedAt) })
	sort.SliceStable(recs.appointments, func(i, j int) bool {
		return recs.appointments[i].ScheduledAt.Before(recs.appointments[j].ScheduledAt)
	})

	out := &DayDetails{
		Date: s.zone.Key(r.From),
		Summary: DaySummary{
			MoodCount:        len(recs.moods),
			JournalCount:     len(recs.journals),
			SelfCareCount:    len(recs.selfCare),
			AppointmentCount: len(recs.appointments),
		},
		Moods:        nonNil(recs.moods),
		Journals:     nonNil(recs.journals),
		SelfCare:     nonNil(recs.selfCare),
		Appointments: nonNil(recs.appointments),
	}
	if n := len(recs.moods); n > 0 {
		sum := 0
		for _, m := range recs.moods {
			sum += m.MoodLevel
		}
		avg := round2(float64(sum) / float64(n))
		out.Summary.AvgMood = &avg
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
