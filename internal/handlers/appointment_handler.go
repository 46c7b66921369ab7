package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/usecase/appointment"
)

const appointmentNotFoundMsg = "Cita no encontrada."

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo   domain.Repository
	create *appointment.CreateAppointment
	update *appointment.UpdateAppointment
	list   *appointment.ListAppointments
	slots  *appointment.GetAvailability
	audit  *audit.Dispatcher
}

func NewAppointmentHandler(
	repo domain.Repository,
	create *appointment.CreateAppointment,
	update *appointment.UpdateAppointment,
	list *appointment.ListAppointments,
	slots *appointment.GetAvailability,
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:   repo,
		create: create,
		update: update,
		list:   list,
		slots:  slots,
		audit:  audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	PatientName string `json:"patient_name" binding:"required"`
	Owner       string `json:"owner" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=pending completed cancelled in-progress"`
	CreatedAt   string `json:"created_at"`
}

// ======================================================
// HANDLERS
// ======================================================

// List accepts an optional ?date=YYYY-MM-DD filter.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err, "appointment_not_found", appointmentNotFoundMsg)
		return
	}
	httpresp.List(c, appointments)
}

// Availability lists the free slots of ?date=YYYY-MM-DD.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_date_or_time", httperr.MessageFor("invalid_date_or_time"))
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err, "appointment_not_found", appointmentNotFoundMsg)
		return
	}
	httpresp.List(c, slots)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "appointment_not_found", appointmentNotFoundMsg)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		ActorID:     actorID(c),
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Owner:       req.Owner,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
		Status:      req.Status,
		CreatedAt:   req.CreatedAt,
	})
	if err != nil {
		writeError(c, err, "appointment_not_found", appointmentNotFoundMsg)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var patch models.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), actorID(c), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "appointment_not_found", appointmentNotFoundMsg)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "appointment_not_found", appointmentNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})
	httpresp.NoContent(c)
}
