package product

import (
	"context"
	"errors"
	"io"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/product"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/storage"
)

// Upload is an image file sent along with a product.
type Upload struct {
	Filename string
	Body     io.Reader
}

type Images struct {
	repo  domain.Repository
	sink  storage.Sink
	audit *audit.Dispatcher
}

func NewImages(
	repo domain.Repository,
	sink storage.Sink,
	audit *audit.Dispatcher,
) *Images {
	return &Images{
		repo:  repo,
		sink:  sink,
		audit: audit,
	}
}

// Create stores p and, when img is given, its image. The extension is
// checked before anything is written.
func (uc *Images) Create(
	ctx context.Context,
	actorID string,
	p *models.Product,
	img *Upload,
) (*models.Product, error) {

	var ext string
	if img != nil {
		var err error
		if ext, err = domain.ImageExt(img.Filename); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if img != nil {
		url, err := uc.sink.Save(ctx, domain.ImageKey(p.ID, ext), img.Body)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
		if err := uc.repo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "product_created",
		Entity:   "product",
		EntityID: p.ID,
	})

	return p, nil
}

// Attach replaces the image of an existing product.
func (uc *Images) Attach(
	ctx context.Context,
	actorID string,
	productID string,
	img Upload,
) (*models.Product, error) {

	ext, err := domain.ImageExt(img.Filename)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.Get(ctx, productID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, httperr.ErrBusiness("product_not_found")
	}
	if err != nil {
		return nil, err
	}

	url, err := uc.sink.Save(ctx, domain.ImageKey(p.ID, ext), img.Body)
	if err != nil {
		return nil, err
	}

	p.ImageURL = url
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "product_image_updated",
		Entity:   "product",
		EntityID: p.ID,
	})

	return p, nil
}
