package user

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)

	// FindByEmail returns docstore.ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
}
