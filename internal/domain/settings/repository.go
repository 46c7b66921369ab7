package settings

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Repository interface {
	// Load returns the stored document, possibly partial, or nil when
	// nothing has been stored yet.
	Load(ctx context.Context) (*models.SettingsPatch, error)
	Save(ctx context.Context, s *models.Settings) error
}
