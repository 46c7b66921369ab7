package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.TimeSlot, error) {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(date, appointments, uc.now(), uc.loc)
}
