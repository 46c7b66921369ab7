package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/cart"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/middleware"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/usecase/cart"
)

type CartHandler struct {
	service  *cart.Service
	checkout *cart.Checkout
}

func NewCartHandler(service *cart.Service, checkout *cart.Checkout) *CartHandler {
	return &CartHandler{service: service, checkout: checkout}
}

// --------- Requests ---------

type AddCartItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"gte=0"`
	ImageURL  string  `json:"image_url"`
}

type CheckoutRequest struct {
	PaymentMethod string             `json:"payment_method" binding:"required"`
	PaymentData   domain.PaymentData `json:"payment_data"`
}

// --------- Handlers ---------

func (h *CartHandler) Get(c *gin.Context) {
	ct, err := h.service.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err, "cart_not_found", "Carrito no encontrado.")
		return
	}
	httpresp.OK(c, ct)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ct, err := h.service.AddItem(c.Request.Context(), c.Param("userId"), models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		writeError(c, err, "product_not_found", productNotFoundMsg)
		return
	}
	httpresp.Created(c, ct)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	ct, err := h.service.RemoveItem(c.Request.Context(), c.Param("userId"), c.Param("productId"))
	if err != nil {
		writeError(c, err, "cart_not_found", "Carrito no encontrado.")
		return
	}
	httpresp.OK(c, ct)
}

func (h *CartHandler) Clear(c *gin.Context) {
	ct, err := h.service.Clear(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err, "cart_not_found", "Carrito no encontrado.")
		return
	}
	httpresp.OK(c, ct)
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	var payerEmail string
	if u := middleware.CurrentUser(c); u != nil {
		payerEmail = u.Email
	}

	order, err := h.checkout.Execute(c.Request.Context(), cart.CheckoutInput{
		UserID:        c.Param("userId"),
		PayerEmail:    payerEmail,
		PaymentMethod: req.PaymentMethod,
		PaymentData:   req.PaymentData,
	})
	if err != nil {
		writeError(c, err, "cart_not_found", "Carrito no encontrado.")
		return
	}
	httpresp.Created(c, order)
}
