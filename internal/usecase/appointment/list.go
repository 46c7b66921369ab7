package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lists every appointment, or only those of one day when date
// (YYYY-MM-DD) is given.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return appointments, nil
	}

	if _, err := domain.ParseSlot(date, "00:00", time.UTC); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}
