package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/care"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

type SOSStepInput struct {
	Order int    `json:"order"`
	Text  string `json:"text"`
}

type SOSContactInput struct {
	Name     string `json:"name" validate:"required"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type SOSPlanInput struct {
	Title       string            `json:"title" validate:"max=200"`
	Steps       []SOSStepInput    `json:"steps" validate:"max=50"`
	Contacts    []SOSContactInput `json:"contacts" validate:"max=20,dive"`
	SafetyTools []string          `json:"safetyTools" validate:"max=50"`
	Notes       string            `json:"notes"`
}

// sanitize trims every field, drops blank steps and tools, and orders steps.
func (in *SOSPlanInput) sanitize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Notes = strings.TrimSpace(in.Notes)

	steps := in.Steps[:0:0]
	for _, st := range in.Steps {
		st.Text = strings.TrimSpace(st.Text)
		if st.Text == "" {
			continue
		}
		steps = append(steps, st)
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
	in.Steps = steps

	for i := range in.Contacts {
		c := &in.Contacts[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Relation = strings.TrimSpace(c.Relation)
		c.Phone = strings.TrimSpace(c.Phone)
		c.Email = strings.TrimSpace(c.Email)
	}

	tools := in.SafetyTools[:0:0]
	for _, t := range in.SafetyTools {
		if t = strings.TrimSpace(t); t != "" {
			tools = append(tools, t)
		}
	}
	in.SafetyTools = tools
}

type SOSService interface {
	// Get returns nil when the user has no plan yet.
	Get(ctx context.Context, userID uuid.UUID) (*types.SOSPlan, error)
	Save(ctx context.Context, userID uuid.UUID, in SOSPlanInput) (*types.SOSPlan, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type sosService struct {
	log  *logger.Logger
	repo repos.SOSPlanRepo
}

func NewSOSService(log *logger.Logger, repo repos.SOSPlanRepo) SOSService {
	return &sosService{log: log.With("service", "SOSService"), repo: repo}
}

func (s *sosService) Get(ctx context.Context, userID uuid.UUID) (*types.SOSPlan, error) {
	return s.repo.GetByUser(dbctx.New(ctx), userID)
}

func (s *sosService) Save(ctx context.Context, userID uuid.UUID, in SOSPlanInput) (*types.SOSPlan, error) {
	in.sanitize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	plan := &types.SOSPlan{
		UserID:      userID,
		Title:       in.Title,
		Steps:       make([]types.SOSStep, 0, len(in.Steps)),
		Contacts:    make([]types.SOSContact, 0, len(in.Contacts)),
		SafetyTools: append([]string{}, in.SafetyTools...),
		Notes:       in.Notes,
	}
	if plan.Title == "" {
		plan.Title = care.DefaultSOSPlanTitle
	}
	for _, st := range in.Steps {
		plan.Steps = append(plan.Steps, types.SOSStep{Order: st.Order, Text: st.Text})
	}
	for _, c := range in.Contacts {
		plan.Contacts = append(plan.Contacts, types.SOSContact{Name: c.Name, Relation: c.Relation, Phone: c.Phone, Email: c.Email})
	}

	saved, err := s.repo.Upsert(dbctx.New(ctx), plan)
	if err != nil {
		s.log.Error("SOS plan save failed", "user_id", userID, "error", err)
		return nil, err
	}
	return saved, nil
}

func (s *sosService) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := s.repo.DeleteByUser(dbctx.New(ctx), userID)
	return err
}
