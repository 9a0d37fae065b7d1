package booking

import (
	"time"

	"salesbot/models"
)

const (
	businessOpenHour  = 9
	businessCloseHour = 17
)

// DefaultSchedulingService proposes appointment slots from the wall clock.
type DefaultSchedulingService struct{}

// SuggestNextSlot returns the current time plus two hours, rounded up to the
// next half hour and clamped into the 09:00-17:00 business window.
func (DefaultSchedulingService) SuggestNextSlot() models.TimeSlot {
	return nextSlotAfter(time.Now())
}

func nextSlotAfter(now time.Time) models.TimeSlot {
	t := now.Add(2 * time.Hour).Truncate(time.Minute)

	switch m := t.Minute(); {
	case m == 0 || m == 30:
		// already on a half-hour boundary
	case m < 30:
		t = t.Add(time.Duration(30-m) * time.Minute)
	default:
		t = t.Add(time.Duration(60-m) * time.Minute)
	}

	if t.Hour() < businessOpenHour {
		t = time.Date(t.Year(), t.Month(), t.Day(), businessOpenHour, 0, 0, 0, t.Location())
	}
	if t.Hour() >= businessCloseHour {
		t = time.Date(t.Year(), t.Month(), t.Day(), businessOpenHour, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
	}

	return models.TimeSlot{
		Date: t.Format("2006-01-02"),
		Time: t.Format("15:04"),
	}
}
