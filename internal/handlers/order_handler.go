package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/vetclinic-api/internal/middleware"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const orderNotFoundMsg = "Pedido no encontrado."

type OrderHandler struct {
	orders *repository.OrderRepository
}

func NewOrderHandler(orders *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "order_not_found", orderNotFoundMsg)
		return
	}
	httpresp.List(c, orders)
}

// Get is open to the order's owner and to admins.
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "order_not_found", orderNotFoundMsg)
		return
	}

	if c.GetString(middleware.ContextUserRole) != models.RoleAdmin &&
		c.GetString(middleware.ContextUserID) != o.UserID {
		httperr.Forbidden(c, "forbidden", httperr.MessageFor("forbidden"))
		return
	}
	httpresp.OK(c, o)
}
