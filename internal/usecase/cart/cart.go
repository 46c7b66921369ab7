package cart

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/cart"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

// Service runs the cart operations. Every operation reads the cart and
// writes it back in two store calls, so concurrent edits of one cart can
// lose updates.
type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID string) (*models.Cart, error) {
	return s.repo.GetCart(ctx, userID)
}

// AddItem merges item into the user's cart; the product must exist.
func (s *Service) AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	product, err := s.repo.GetProduct(ctx, item.ProductID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, httperr.ErrBusiness("product_not_found")
	}
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	domain.Add(c, domain.Line(item, product))

	if err := s.repo.SaveCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	c, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	domain.Remove(c, productID)

	if err := s.repo.SaveCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	c := &models.Cart{UserID: userID}
	domain.Clear(c)

	if err := s.repo.SaveCart(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
