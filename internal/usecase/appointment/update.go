package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

// UpdateAppointment applies a partial update. Booking rules are not
// re-checked on update.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actorID string,
	id string,
	patch models.AppointmentPatch,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	patch.Apply(ap)

	if err := uc.repo.Update(ctx, ap); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	action := "appointment_updated"
	if ap.Status != previous && domain.Status(ap.Status) == domain.StatusCancelled {
		action = "appointment_cancelled"
	}
	if ap.Status != previous && domain.Status(ap.Status) == domain.StatusCompleted {
		action = "appointment_completed"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
