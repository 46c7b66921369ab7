package repository

import (
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/product"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type ProductRepository struct {
	documents[models.Product]
}

func NewProductRepository(store docstore.Store) *ProductRepository {
	return &ProductRepository{newDocuments(
		store,
		docstore.CollectionProducts,
		func(p *models.Product) string { return p.ID },
		func(p *models.Product, id string) { p.ID = id },
	)}
}

var _ domain.Repository = (*ProductRepository)(nil)
