package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ActorID string

	PatientID   string
	PatientName string
	Owner       string
	Date        string
	Time        string
	Reason      string
	Status      string
	CreatedAt   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Notifier
	loc    *time.Location
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		notify: notifier,
		loc:    loc,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		PatientID:   in.PatientID,
		PatientName: in.PatientName,
		Owner:       in.Owner,
		Date:        in.Date,
		Time:        in.Time,
		Reason:      in.Reason,
		Status:      in.Status,
		CreatedAt:   in.CreatedAt,
	}

	// --------------------------------------------------
	// Snapshot of the agenda
	// --------------------------------------------------
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Booking rules
	// --------------------------------------------------
	now := uc.now().In(uc.loc)
	if err := domain.ValidateNew(ap, existing, now, uc.loc); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				UserID: in.ActorID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]string{
					"date": ap.Date,
					"time": ap.Time,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Insert (not atomic with the scan above)
	// --------------------------------------------------
	// One spelling per slot: "10:00:00" is stored as "10:00".
	if start, err := domain.ParseSlot(ap.Date, ap.Time, uc.loc); err == nil {
		ap.Time = domain.SlotClock(start)
	}
	if ap.CreatedAt == "" {
		ap.CreatedAt = uc.now().UTC().Format(time.RFC3339)
	}
	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Side effects
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})
	uc.notify.Notify(notify.AppointmentCreated(ap))

	return ap, nil
}
