package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
)

type MercadoPagoGateway struct {
	client mppayment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{client: mppayment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, c Charge) (string, error) {
	req := mppayment.Request{
		TransactionAmount: c.Amount,
		Token:             c.CardToken,
		Installments:      1,
		Description:       c.Description,
	}
	if c.PayerEmail != "" {
		req.Payer = &mppayment.PayerRequest{Email: c.PayerEmail}
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mercadopago create payment: %w", err)
	}
	if resp.Status == "rejected" {
		return "", httperr.ErrBusiness("payment_declined")
	}

	return fmt.Sprint(resp.ID), nil
}

func (g *MercadoPagoGateway) RequiresCardToken() bool {
	return true
}
