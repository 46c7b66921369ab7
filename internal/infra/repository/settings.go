package repository

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/settings"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

// SettingsRepository reads the singleton as a patch so older, partial
// documents still decode; it always writes the full record.
type SettingsRepository struct {
	stored *docstore.Collection[models.SettingsPatch]
	full   *docstore.Collection[models.Settings]
}

func NewSettingsRepository(store docstore.Store) *SettingsRepository {
	return &SettingsRepository{
		stored: docstore.NewCollection[models.SettingsPatch](store, docstore.CollectionSettings),
		full:   docstore.NewCollection[models.Settings](store, docstore.CollectionSettings),
	}
}

func (r *SettingsRepository) Load(ctx context.Context) (*models.SettingsPatch, error) {
	p, err := r.stored.Get(ctx, domain.DocumentID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (r *SettingsRepository) Save(ctx context.Context, s *models.Settings) error {
	return r.full.Put(ctx, domain.DocumentID, s)
}

var _ domain.Repository = (*SettingsRepository)(nil)
