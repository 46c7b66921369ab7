package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/product"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	productuc "github.com/BruksfildServices01/vetclinic-api/internal/usecase/product"
)

const productNotFoundMsg = "Producto no encontrado."

type ProductHandler struct {
	repo   domain.Repository
	images *productuc.Images
	audit  *audit.Dispatcher
}

func NewProductHandler(
	repo domain.Repository,
	images *productuc.Images,
	audit *audit.Dispatcher,
) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name     string   `json:"name" form:"name" binding:"required"`
	Price    *float64 `json:"price" form:"price" binding:"required,gte=0"`
	Stock    *int     `json:"stock" form:"stock" binding:"required,gte=0"`
	Category string   `json:"category" form:"category" binding:"required"`
	ImageURL string   `json:"image_url"`
}

func (r CreateProductRequest) product() *models.Product {
	return &models.Product{
		Name:     r.Name,
		Price:    *r.Price,
		Stock:    *r.Stock,
		Category: r.Category,
		ImageURL: r.ImageURL,
	}
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	p, err := h.images.Create(c.Request.Context(), actorID(c), req.product(), nil)
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}
	httpresp.Created(c, p)
}

// CreateWithImage takes a multipart form with the product fields and an
// optional "file".
func (h *ProductHandler) CreateWithImage(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	var upload *productuc.Upload
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
			return
		}
		defer f.Close()
		upload = &productuc.Upload{Filename: fh.Filename, Body: f}
	} else if !errors.Is(err, http.ErrMissingFile) {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
		return
	}

	p, err := h.images.Create(c.Request.Context(), actorID(c), req.product(), upload)
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}
	httpresp.Created(c, p)
}

func (h *ProductHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Debe enviar un archivo en el campo file.")
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "No se pudo leer el archivo.")
		return
	}
	defer f.Close()

	p, err := h.images.Attach(c.Request.Context(), actorID(c), c.Param("id"), productuc.Upload{
		Filename: fh.Filename,
		Body:     f,
	})
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}

	patch.Apply(p)
	if err := h.repo.Update(ctx, p); err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "product_updated",
		Entity:   "product",
		EntityID: p.ID,
	})
	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: id,
	})
	httpresp.NoContent(c)
}
