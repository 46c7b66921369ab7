package models

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url,omitempty"`
}

type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Stock    *int     `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Category *string  `json:"category,omitempty"`
	ImageURL *string  `json:"image_url,omitempty"`
}

func (p ProductPatch) Apply(pr *Product) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	if p.ImageURL != nil {
		pr.ImageURL = *p.ImageURL
	}
}
