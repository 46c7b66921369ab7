package repository

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/cart"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type OrderRepository struct {
	documents[models.Order]
}

func NewOrderRepository(store docstore.Store) *OrderRepository {
	return &OrderRepository{newDocuments(
		store,
		docstore.CollectionOrders,
		func(o *models.Order) string { return o.ID },
		func(o *models.Order, id string) { o.ID = id },
	)}
}

// CartRepository keeps one cart document per user, keyed by the user id.
type CartRepository struct {
	carts    *docstore.Collection[models.Cart]
	products *ProductRepository
	orders   *OrderRepository
}

func NewCartRepository(store docstore.Store) *CartRepository {
	return &CartRepository{
		carts:    docstore.NewCollection[models.Cart](store, docstore.CollectionCarts),
		products: NewProductRepository(store),
		orders:   NewOrderRepository(store),
	}
}

func (r *CartRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return r.products.Get(ctx, id)
}

func (r *CartRepository) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := r.carts.Get(ctx, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	c.UserID = userID
	return c, nil
}

func (r *CartRepository) SaveCart(ctx context.Context, c *models.Cart) error {
	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.carts.Put(ctx, c.UserID, c)
}

func (r *CartRepository) CreateOrder(ctx context.Context, o *models.Order) error {
	return r.orders.Create(ctx, o)
}

var _ domain.Repository = (*CartRepository)(nil)
