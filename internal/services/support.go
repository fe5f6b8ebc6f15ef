package services

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/cache"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

//go:embed seed/support_persons.yaml
var supportPersonSeed []byte

const supportDirectoryKey = "support-persons:v1"

type supportSeedFile struct {
	SupportPersons []*types.SupportPerson `yaml:"support_persons"`
}

// ParseSupportSeed decodes a support directory YAML document.
func ParseSupportSeed(raw []byte) ([]*types.SupportPerson, error) {
	var f supportSeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode support seed: %w", err)
	}
	out := make([]*types.SupportPerson, 0, len(f.SupportPersons))
	for i, p := range f.SupportPersons {
		if p == nil {
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		p.Title = strings.TrimSpace(p.Title)
		if p.Name == "" || p.Title == "" {
			return nil, fmt.Errorf("support seed entry %d: name and title are required", i)
		}
		out = append(out, p)
	}
	return out, nil
}

type SupportService interface {
	List(ctx context.Context) ([]*types.SupportPerson, error)
	// Seed loads the embedded directory, updating existing people by name.
	Seed(ctx context.Context) (int, error)
}

type supportService struct {
	log   *logger.Logger
	repo  repos.SupportPersonRepo
	cache cache.Cache
	ttl   time.Duration
}

func NewSupportService(log *logger.Logger, repo repos.SupportPersonRepo, c cache.Cache, ttl time.Duration) SupportService {
	if c == nil {
		c = cache.Noop()
	}
	return &supportService{
		log:   log.With("service", "SupportService"),
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

func (s *supportService) List(ctx context.Context) ([]*types.SupportPerson, error) {
	var cached []*types.SupportPerson
	hit, err := s.cache.GetJSON(ctx, supportDirectoryKey, &cached)
	if err != nil {
		s.log.Warn("Support directory cache read failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	people, err := s.repo.List(dbctx.New(ctx))
	if err != nil {
		return nil, err
	}
	if people == nil {
		people = []*types.SupportPerson{}
	}
	if err := s.cache.SetJSON(ctx, supportDirectoryKey, people, s.ttl); err != nil {
		s.log.Warn("Support directory cache write failed", "error", err)
	}
	return people, nil
}

func (s *supportService) Seed(ctx context.Context) (int, error) {
	people, err := ParseSupportSeed(supportPersonSeed)
	if err != nil {
		return 0, err
	}
	n, err := s.repo.Upsert(dbctx.New(ctx), people)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Delete(ctx, supportDirectoryKey); err != nil {
		s.log.Warn("Support directory cache invalidation failed", "error", err)
	}
	s.log.Info("Support directory seeded", "count", n)
	return n, nil
}
