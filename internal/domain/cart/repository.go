package cart

import (
	"context"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type Repository interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)

	// GetCart returns an empty cart owned by userID when none is stored.
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, c *models.Cart) error

	CreateOrder(ctx context.Context, o *models.Order) error
}
