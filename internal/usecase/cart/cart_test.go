package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/cart"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore/docstoretest"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/payment"
)

type fixture struct {
	repo     *repository.CartRepository
	audit    *audit.Dispatcher
	products *repository.ProductRepository
	orders   *repository.OrderRepository
	service  *Service
	checkout *Checkout
}

func setup(t *testing.T, gateway payment.Gateway) *fixture {
	t.Helper()

	_, store := docstoretest.NewRedis(t)
	repo := repository.NewCartRepository(store)
	dispatcher := audit.NewDispatcher(audit.New(store))
	t.Cleanup(dispatcher.Close)

	return &fixture{
		repo:     repo,
		audit:    dispatcher,
		products: repository.NewProductRepository(store),
		orders:   repository.NewOrderRepository(store),
		service:  NewService(repo),
		checkout: NewCheckout(repo, gateway, dispatcher),
	}
}

func (f *fixture) product(t *testing.T, name string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price, Stock: 10, Category: "food"}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID, Quantity: 2, Name: "Croquetas"})
	require.NoError(t, err)
	c, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, "Dog food", c.Items[0].Name)
	assert.Equal(t, 10.0, c.Items[0].Price)

	stored, err := f.service.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, c.Items, stored.Items)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	f := setup(t, payment.LocalGateway{})

	_, err := f.service.AddItem(context.Background(), "u1", models.CartItem{ProductID: "nope", Quantity: 1})
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))

	c, err := f.service.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID})
	require.NoError(t, err)

	first, err := f.service.RemoveItem(ctx, "u1", "absent")
	require.NoError(t, err)
	second, err := f.service.RemoveItem(ctx, "u1", "absent")
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.Len(t, second.Items, 1)
}

func TestGet_MissingCartIsEmpty(t *testing.T) {
	f := setup(t, payment.LocalGateway{})

	c, err := f.service.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", c.UserID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestCheckout_TotalAndClearsCart(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10.00)
	collar := f.product(t, "Collar", 5.50)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, "u1", models.CartItem{ProductID: collar.ID, Quantity: 1})
	require.NoError(t, err)

	// Catalog price changes after adding do not affect the order.
	food.Price = 99
	require.NoError(t, f.products.Update(ctx, food))

	order, err := f.checkout.Execute(ctx, CheckoutInput{
		UserID:        "u1",
		PaymentMethod: models.PaymentCard,
		PaymentData:   domain.PaymentData{CardHolder: "Ana", CardNumber: "4111 1111 1111 4242"},
	})
	require.NoError(t, err)

	assert.Equal(t, 25.50, order.Total)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, "4242", order.PaymentDetails.CardLast4)
	assert.NotEmpty(t, order.PaymentDetails.TransactionID)
	assert.Len(t, order.Items, 2)

	stored, err := f.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)

	c, err := f.service.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

// stuckCart stores orders but cannot save carts.
type stuckCart struct {
	*repository.CartRepository
}

func (stuckCart) SaveCart(context.Context, *models.Cart) error {
	return errors.New("store unavailable")
}

func TestCheckout_CartClearFailureStillReturnsOrder(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID, Quantity: 1})
	require.NoError(t, err)

	checkout := NewCheckout(stuckCart{f.repo}, payment.LocalGateway{}, f.audit)
	order, err := checkout.Execute(ctx, CheckoutInput{
		UserID:        "u1",
		PaymentMethod: models.PaymentTransfer,
		PaymentData:   domain.PaymentData{Holder: "Ana", Bank: "Banco", AccountNumber: "123"},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	_, err = f.orders.Get(ctx, order.ID)
	assert.NoError(t, err)
}

func TestCheckout_EmptyCartCreatesNoOrder(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()

	_, err := f.checkout.Execute(ctx, CheckoutInput{UserID: "u1", PaymentMethod: "cash"})
	assert.True(t, httperr.IsBusiness(err, "empty_cart"))

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckout_IncompleteTransferKeepsCart(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID})
	require.NoError(t, err)

	_, err = f.checkout.Execute(ctx, CheckoutInput{
		UserID:        "u1",
		PaymentMethod: models.PaymentTransfer,
		PaymentData:   domain.PaymentData{Holder: "Ana"},
	})
	assert.True(t, httperr.IsBusiness(err, "incomplete_payment_data"))

	c, err := f.service.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestCheckout_OtherMethodRecordsOnlyMethod(t *testing.T) {
	f := setup(t, payment.LocalGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID})
	require.NoError(t, err)

	order, err := f.checkout.Execute(ctx, CheckoutInput{UserID: "u1", PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, "cash", order.PaymentMethod)
	assert.Equal(t, models.PaymentDetails{}, order.PaymentDetails)
}

type decliningGateway struct{}

func (decliningGateway) Authorize(context.Context, payment.Charge) (string, error) {
	return "", httperr.ErrBusiness("payment_declined")
}

func (decliningGateway) RequiresCardToken() bool { return true }

func TestCheckout_GatewayRules(t *testing.T) {
	f := setup(t, decliningGateway{})
	ctx := context.Background()
	food := f.product(t, "Dog food", 10)

	_, err := f.service.AddItem(ctx, "u1", models.CartItem{ProductID: food.ID})
	require.NoError(t, err)

	card := domain.PaymentData{CardHolder: "Ana", CardNumber: "4111111111111111"}
	_, err = f.checkout.Execute(ctx, CheckoutInput{UserID: "u1", PaymentMethod: "card", PaymentData: card})
	assert.True(t, httperr.IsBusiness(err, "incomplete_payment_data"))

	card.CardToken = "tok"
	_, err = f.checkout.Execute(ctx, CheckoutInput{UserID: "u1", PaymentMethod: "card", PaymentData: card})
	assert.True(t, httperr.IsBusiness(err, "payment_declined"))

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
