package appointment

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id string) error
}
