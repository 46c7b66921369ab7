package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const requestNotFoundMsg = "Solicitud no encontrada."

type AppointmentRequestHandler struct {
	repo  *repository.AppointmentRequestRepository
	audit *audit.Dispatcher
}

func NewAppointmentRequestHandler(
	repo *repository.AppointmentRequestRepository,
	audit *audit.Dispatcher,
) *AppointmentRequestHandler {
	return &AppointmentRequestHandler{repo: repo, audit: audit}
}

type CreateAppointmentRequestRequest struct {
	OwnerName string `json:"owner_name" binding:"required"`
	PetName   string `json:"pet_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Reason    string `json:"reason" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=pending managed rejected"`
	CreatedAt string `json:"created_at"`
}

func (h *AppointmentRequestHandler) List(c *gin.Context) {
	requests, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "appointment_request_not_found", requestNotFoundMsg)
		return
	}
	httpresp.List(c, requests)
}

func (h *AppointmentRequestHandler) Get(c *gin.Context) {
	r, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "appointment_request_not_found", requestNotFoundMsg)
		return
	}
	httpresp.OK(c, r)
}

// Create is public: pet owners leave requests from the clinic website.
func (h *AppointmentRequestHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	r := &models.AppointmentRequest{
		OwnerName: req.OwnerName,
		PetName:   req.PetName,
		Phone:     req.Phone,
		Email:     req.Email,
		Reason:    req.Reason,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	}
	if r.Status == "" {
		r.Status = models.RequestStatusPending
	}
	if r.CreatedAt == "" {
		r.CreatedAt = nowStamp()
	}

	if err := h.repo.Create(c.Request.Context(), r); err != nil {
		writeError(c, err, "appointment_request_not_found", requestNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_request_created",
		Entity:   "appointment_request",
		EntityID: r.ID,
	})
	httpresp.Created(c, r)
}

func (h *AppointmentRequestHandler) Update(c *gin.Context) {
	var patch models.AppointmentRequestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	r, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, "appointment_request_not_found", requestNotFoundMsg)
		return
	}

	patch.Apply(r)
	if err := h.repo.Update(ctx, r); err != nil {
		writeError(c, err, "appointment_request_not_found", requestNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_request_updated",
		Entity:   "appointment_request",
		EntityID: r.ID,
		Metadata: map[string]string{"status": r.Status},
	})
	httpresp.OK(c, r)
}

func (h *AppointmentRequestHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "appointment_request_not_found", requestNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_request_deleted",
		Entity:   "appointment_request",
		EntityID: id,
	})
	httpresp.NoContent(c)
}
