package booking

import (
	"context"
	"time"

	bookingsRepo "salesbot/database/repository/bookings"
	"salesbot/models"

	"github.com/google/uuid"
)

// DefaultBookingService implements BookingService over a booking repository.
type DefaultBookingService struct {
	Repo bookingsRepo.Repository
}

// Save assigns an id if the booking does not carry one, persists the record
// and returns the id. Safe for concurrent calls; ids are generated, never
// derived from request data.
func (s *DefaultBookingService) Save(ctx context.Context, booking models.Booking) (string, error) {
	if booking.BookingID == "" {
		booking.BookingID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	return s.Repo.Create(ctx, booking)
}

// GetByID returns a previously saved booking.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}
