package settings

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/settings"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Service struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewService(repo domain.Repository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

// Current returns the defaults overlaid with whatever is stored.
func (s *Service) Current(ctx context.Context) (models.Settings, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return domain.Merge(stored), nil
}

// Update merges defaults, stored and incoming, persists the full record
// and returns it.
func (s *Service) Update(ctx context.Context, actorID string, incoming *models.SettingsPatch) (models.Settings, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	merged := domain.Merge(stored, incoming)
	if err := s.repo.Save(ctx, &merged); err != nil {
		return models.Settings{}, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "settings_updated",
		Entity:   "settings",
		EntityID: domain.DocumentID,
	})

	return merged, nil
}
