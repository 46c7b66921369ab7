package appointment

import (
	"time"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const (
	dateLayout = "2006-01-02"

	// Business hours, inclusive on both ends.
	OpeningSecond = 8 * 60 * 60
	ClosingSecond = 20 * 60 * 60
)

var timeLayouts = []string{"15:04", "15:04:05"}

// ===============================
// Booking rules
// ===============================

// ParseSlot combines an ISO date and an HH:MM (or HH:MM:SS) time in loc.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(dateLayout+" "+layout, date+" "+clock, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
}

// ValidateNew applies the booking rules to a new appointment in order:
// parseable slot, not in the past, inside business hours, slot free.
// existing is a snapshot of the stored appointments; the caller inserts
// afterwards, so two concurrent bookings of one slot can both pass.
func ValidateNew(
	ap *models.Appointment,
	existing []models.Appointment,
	now time.Time,
	loc *time.Location,
) error {
	start, err := ParseSlot(ap.Date, ap.Time, loc)
	if err != nil {
		return err
	}

	if start.Before(now) {
		return httperr.ErrBusiness("past_date")
	}

	h, m, s := start.Clock()
	second := h*3600 + m*60 + s
	if second < OpeningSecond || second > ClosingSecond {
		return httperr.ErrBusiness("outside_business_hours")
	}

	for _, other := range existing {
		if other.Date != ap.Date || !Status(other.Status).BlocksSlot() {
			continue
		}
		if sameSlot(other, ap.Time, start, loc) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	return nil
}

// sameSlot compares clock values, so "10:00" and "10:00:00" clash.
// Stored times that no longer parse fall back to a textual match.
func sameSlot(other models.Appointment, clock string, start time.Time, loc *time.Location) bool {
	t, err := ParseSlot(other.Date, other.Time, loc)
	if err != nil {
		return other.Time == clock
	}
	return t.Equal(start)
}

// SlotClock is the stored spelling of a slot time: HH:MM, with seconds
// only when they are not zero.
func SlotClock(t time.Time) string {
	if t.Second() == 0 {
		return t.Format("15:04")
	}
	return t.Format("15:04:05")
}
