package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

var catalogFood = &models.Product{
	ID:       "p1",
	Name:     "Dog food",
	Price:    10,
	ImageURL: "/static/products/p1.png",
}

func TestAdd_MergesQuantitiesWithCatalogFallback(t *testing.T) {
	c := &models.Cart{UserID: "u1"}

	Add(c, Line(models.CartItem{ProductID: "p1", Quantity: 2, Name: "First"}, catalogFood))
	Add(c, Line(models.CartItem{ProductID: "p1", Quantity: 3, Price: 12.5}, catalogFood))

	require.Len(t, c.Items, 1)
	it := c.Items[0]
	assert.Equal(t, 5, it.Quantity)
	assert.Equal(t, 12.5, it.Price)
	assert.Equal(t, "Dog food", it.Name)
	assert.Equal(t, "/static/products/p1.png", it.ImageURL)
}

func TestAdd_AppendsOtherProducts(t *testing.T) {
	c := &models.Cart{UserID: "u1"}
	other := &models.Product{ID: "p2", Name: "Collar", Price: 5.5}

	Add(c, Line(models.CartItem{Quantity: 1}, catalogFood))
	Add(c, Line(models.CartItem{}, other))

	require.Len(t, c.Items, 2)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, "p2", c.Items[1].ProductID)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 5.5, c.Items[1].Price)
}

func TestRemove_Idempotent(t *testing.T) {
	c := &models.Cart{UserID: "u1", Items: []models.CartItem{{ProductID: "p1", Quantity: 1}}}

	Remove(c, "missing")
	first := append([]models.CartItem(nil), c.Items...)
	Remove(c, "missing")

	assert.Equal(t, first, c.Items)
	assert.Len(t, c.Items, 1)

	Remove(c, "p1")
	Remove(c, "p1")
	assert.Empty(t, c.Items)
}

func TestClear(t *testing.T) {
	c := &models.Cart{Items: []models.CartItem{{ProductID: "p1"}}}
	Clear(c)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestTotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "a", Price: 10.00, Quantity: 2},
		{ProductID: "b", Price: 5.50, Quantity: 1},
	}
	assert.Equal(t, 25.50, Total(items))

	assert.Equal(t, 0.3, Total([]models.CartItem{{Price: 0.1, Quantity: 3}}))
	assert.Equal(t, 0.0, Total(nil))
}

func TestLast4(t *testing.T) {
	got, ok := Last4("4111 1111-1111 1234")
	assert.True(t, ok)
	assert.Equal(t, "1234", got)

	_, ok = Last4("12a")
	assert.False(t, ok)
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		data         PaymentData
		requireToken bool
		wantErr      bool
	}{
		{"card ok", "card", PaymentData{CardHolder: "Ana", CardNumber: "4111111111111234"}, false, false},
		{"card no holder", "card", PaymentData{CardNumber: "4111111111111234"}, false, true},
		{"card no number", "card", PaymentData{CardHolder: "Ana"}, false, true},
		{"card short number", "card", PaymentData{CardHolder: "Ana", CardNumber: "123"}, false, true},
		{"card token required", "card", PaymentData{CardHolder: "Ana", CardNumber: "4111111111111234"}, true, true},
		{"card token given", "card", PaymentData{CardHolder: "Ana", CardNumber: "4111111111111234", CardToken: "tok"}, true, false},
		{"transfer ok", "transfer", PaymentData{Holder: "Ana", Bank: "BNC", AccountNumber: "001"}, false, false},
		{"transfer no bank", "transfer", PaymentData{Holder: "Ana", AccountNumber: "001"}, false, true},
		{"cash", "cash", PaymentData{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayment(tt.method, tt.data, tt.requireToken)
			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, "incomplete_payment_data"))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDetails(t *testing.T) {
	card := Details("card", PaymentData{CardHolder: "Ana", CardNumber: "4111111111111234"}, "tx-1")
	assert.Equal(t, models.PaymentDetails{CardHolder: "Ana", CardLast4: "1234", TransactionID: "tx-1"}, card)

	tr := Details("transfer", PaymentData{Holder: "Ana", Bank: "BNC", AccountNumber: "001"}, "ignored")
	assert.Equal(t, models.PaymentDetails{Holder: "Ana", Bank: "BNC", AccountNumber: "001"}, tr)

	assert.Equal(t, models.PaymentDetails{}, Details("cash", PaymentData{CardHolder: "x"}, "tx"))
}
