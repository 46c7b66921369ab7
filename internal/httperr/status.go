package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type rule struct {
	status  int
	message string
}

// rules maps business codes to the HTTP status and the message shown to
// the clinic staff.
var rules = map[string]rule{
	// booking
	"invalid_date_or_time":   {http.StatusBadRequest, "Fecha u hora inválida."},
	"past_date":              {http.StatusBadRequest, "No se pueden agendar citas en el pasado."},
	"outside_business_hours": {http.StatusBadRequest, "La hora de la cita debe estar entre 08:00 y 20:00."},
	"slot_taken":             {http.StatusBadRequest, "Ya existe una cita programada en esa fecha y hora."},
	"appointment_not_found":  {http.StatusNotFound, "Cita no encontrada."},

	// cart / checkout
	"product_not_found":       {http.StatusNotFound, "Producto no encontrado."},
	"empty_cart":              {http.StatusBadRequest, "El carrito está vacío."},
	"incomplete_payment_data": {http.StatusBadRequest, "Datos de pago incompletos."},
	"payment_declined":        {http.StatusBadRequest, "El pago fue rechazado."},
	"order_not_found":         {http.StatusNotFound, "Pedido no encontrado."},

	// products
	"unsupported_image_format": {http.StatusBadRequest, "Formato de imagen no soportado. Use jpg, jpeg, png, gif o webp."},

	// users
	"email_already_exists": {http.StatusBadRequest, "El email ya está registrado."},

	// auth
	"invalid_credentials": {http.StatusUnauthorized, "Credenciales inválidas."},
	"invalid_token":       {http.StatusUnauthorized, "Token inválido o expirado."},
	"user_not_found":      {http.StatusUnauthorized, "Usuario no encontrado."},
	"forbidden":           {http.StatusForbidden, "No tiene permisos para esta acción."},
}

// StatusFor returns the HTTP status of a business code; unknown codes
// are server errors.
func StatusFor(code string) int {
	if r, ok := rules[code]; ok {
		return r.status
	}
	return http.StatusInternalServerError
}

// MessageFor returns the user-facing message of a business code.
func MessageFor(code string) string {
	if r, ok := rules[code]; ok {
		return r.message
	}
	return "Error interno."
}

// CodeOf extracts the business code from err, if any.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// Business writes err if it is a business error and reports whether it did.
func Business(c *gin.Context, err error) bool {
	code, ok := CodeOf(err)
	if !ok {
		return false
	}
	Write(c, StatusFor(code), code, MessageFor(code))
	return true
}
