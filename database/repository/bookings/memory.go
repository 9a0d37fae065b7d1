package bookingsRepo

import (
	"context"
	"errors"
	"sync"

	"salesbot/models"
)

// memoryRepo keeps bookings in an in-process map. Used when no external
// store is configured, and in tests.
type memoryRepo struct {
	mu    sync.RWMutex
	store map[string]models.Booking
}

// NewMemoryRepo returns an in-memory booking Repository.
func NewMemoryRepo() Repository {
	return &memoryRepo{store: make(map[string]models.Booking)}
}

func (r *memoryRepo) Create(_ context.Context, booking models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[booking.BookingID] = booking
	return booking.BookingID, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.store[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return &booking, nil
}
