package cart

import (
	"math"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

// Line builds the cart line for an incoming item: empty fields fall back
// to the catalog product, a missing quantity counts as one.
func Line(in models.CartItem, product *models.Product) models.CartItem {
	line := models.CartItem{
		ProductID: product.ID,
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		ImageURL:  in.ImageURL,
	}
	if line.Name == "" {
		line.Name = product.Name
	}
	if line.Price == 0 {
		line.Price = product.Price
	}
	if line.ImageURL == "" {
		line.ImageURL = product.ImageURL
	}
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	return line
}

// Add merges line into c. A product already in the cart keeps one line:
// quantities add up and the other fields take the newer values.
func Add(c *models.Cart, line models.CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID != line.ProductID {
			continue
		}
		line.Quantity += c.Items[i].Quantity
		c.Items[i] = line
		return
	}
	c.Items = append(c.Items, line)
}

// Remove drops the line for productID; absent products are a no-op.
func Remove(c *models.Cart, productID string) {
	kept := make([]models.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func Clear(c *models.Cart) {
	c.Items = []models.CartItem{}
}

// Total sums price by quantity over the stored lines, rounded to cents.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return math.Round(sum*100) / 100
}
