package booking

import (
	"context"

	"salesbot/models"
)

// BookingService persists confirmed bookings and reads them back.
type BookingService interface {
	Save(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// SchedulingService proposes the next bookable appointment slot.
type SchedulingService interface {
	SuggestNextSlot() models.TimeSlot
}
