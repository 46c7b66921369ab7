package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/notify"
)

const patientNotFoundMsg = "Paciente no encontrado."

type PatientHandler struct {
	repo   *repository.PatientRepository
	audit  *audit.Dispatcher
	notify *notify.Notifier
}

func NewPatientHandler(
	repo *repository.PatientRepository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
) *PatientHandler {
	return &PatientHandler{
		repo:   repo,
		audit:  audit,
		notify: notifier,
	}
}

// CreatePatientRequest is the patient record with the fields every
// registration form sends marked as required.
type CreatePatientRequest struct {
	models.PatientPatch
	Name     string `json:"name" binding:"required"`
	Owner    string `json:"owner" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Date     string `json:"date" binding:"required"`
	Symptoms string `json:"symptoms" binding:"required"`
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "patient_not_found", patientNotFoundMsg)
		return
	}
	httpresp.List(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "patient_not_found", patientNotFoundMsg)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	p := &models.Patient{}
	req.PatientPatch.Apply(p)
	p.Name = req.Name
	p.Owner = req.Owner
	p.Email = req.Email
	p.Date = req.Date
	p.Symptoms = req.Symptoms

	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		writeError(c, err, "patient_not_found", patientNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: p.ID,
	})
	h.notify.Notify(notify.PatientCreated(p))

	httpresp.Created(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var patch models.PatientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, "patient_not_found", patientNotFoundMsg)
		return
	}

	patch.Apply(p)
	if err := h.repo.Update(ctx, p); err != nil {
		writeError(c, err, "patient_not_found", patientNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "patient_updated",
		Entity:   "patient",
		EntityID: p.ID,
	})
	httpresp.OK(c, p)
}

// Delete leaves the patient's appointments in place.
func (h *PatientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "patient_not_found", patientNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "patient_deleted",
		Entity:   "patient",
		EntityID: id,
	})
	httpresp.NoContent(c)
}
