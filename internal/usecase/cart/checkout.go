package cart

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/cart"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/payment"
)

// ======================================================
// INPUT
// ======================================================

type CheckoutInput struct {
	UserID        string
	PayerEmail    string
	PaymentMethod string
	PaymentData   domain.PaymentData
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo    domain.Repository
	gateway payment.Gateway
	audit   *audit.Dispatcher
	now     func() time.Time
}

func NewCheckout(
	repo domain.Repository,
	gateway payment.Gateway,
	audit *audit.Dispatcher,
) *Checkout {
	return &Checkout{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*models.Order, error) {

	c, err := uc.repo.GetCart(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	// Stored line prices, not the current catalog.
	total := domain.Total(c.Items)

	if err := domain.ValidatePayment(
		in.PaymentMethod,
		in.PaymentData,
		uc.gateway.RequiresCardToken(),
	); err != nil {
		return nil, err
	}

	var transactionID string
	if in.PaymentMethod == models.PaymentCard {
		transactionID, err = uc.gateway.Authorize(ctx, payment.Charge{
			Amount:      total,
			CardToken:   in.PaymentData.CardToken,
			PayerEmail:  in.PayerEmail,
			Description: "Pedido VetClinic",
		})
		if err != nil {
			return nil, err
		}
	}

	order := &models.Order{
		UserID:         in.UserID,
		Items:          append([]models.CartItem(nil), c.Items...),
		Total:          total,
		PaymentMethod:  in.PaymentMethod,
		Status:         models.OrderStatusCreated,
		PaymentDetails: domain.Details(in.PaymentMethod, in.PaymentData, transactionID),
		CreatedAt:      uc.now().UTC().Format(time.RFC3339),
	}

	if err := uc.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	// The order is stored and paid for; a cart that fails to clear is
	// logged rather than turned into an error the client would retry.
	domain.Clear(c)
	if err := uc.repo.SaveCart(ctx, c); err != nil {
		zap.L().Error("checkout: failed to clear cart",
			zap.String("user_id", in.UserID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: order.ID,
		Metadata: map[string]any{
			"total":          order.Total,
			"payment_method": order.PaymentMethod,
		},
	})

	return order, nil
}
