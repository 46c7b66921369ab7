package appointment

import (
	"time"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

// SlotStep is the spacing of the slots offered by FreeSlots.
const SlotStep = 30 * time.Minute

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots lists the slots of date, inside business hours and not in the
// past, that no non-cancelled appointment holds.
func FreeSlots(
	date string,
	existing []models.Appointment,
	now time.Time,
	loc *time.Location,
) ([]TimeSlot, error) {
	dayStart, err := ParseSlot(date, "00:00", loc)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool)
	for _, ap := range existing {
		if ap.Date != date || !Status(ap.Status).BlocksSlot() {
			continue
		}
		if t, err := ParseSlot(ap.Date, ap.Time, loc); err == nil {
			taken[SlotClock(t)] = true
		}
	}

	slots := []TimeSlot{}
	open := dayStart.Add(OpeningSecond * time.Second)
	closing := dayStart.Add(ClosingSecond * time.Second)

	for cur := open; !cur.After(closing); cur = cur.Add(SlotStep) {
		if cur.Before(now) || taken[SlotClock(cur)] {
			continue
		}
		slots = append(slots, TimeSlot{
			Start: cur.Format("15:04"),
			End:   cur.Add(SlotStep).Format("15:04"),
		})
	}

	return slots, nil
}
