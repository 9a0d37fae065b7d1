package bookingsRepo

import (
	"context"

	"salesbot/models"
)

// Repository is the booking record store: a flat key-value collection keyed
// by booking id, safe for concurrent inserts.
type Repository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}
