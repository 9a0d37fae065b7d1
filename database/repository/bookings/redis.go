package bookingsRepo

import (
	"context"
	"encoding/json"
	"errors"

	"salesbot/models"

	"github.com/go-redis/redis/v8"
)

const bookingKeyPrefix = "booking:"

// redisRepo stores each booking as a JSON value under booking:<id>.
type redisRepo struct {
	client *redis.Client
}

// NewRedisRepo returns a Redis-backed booking Repository.
func NewRedisRepo(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	b, err := json.Marshal(booking)
	if err != nil {
		return "", err
	}
	if err := r.client.Set(ctx, bookingKeyPrefix+booking.BookingID, b, 0).Err(); err != nil {
		return "", err
	}
	return booking.BookingID, nil
}

func (r *redisRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	data, err := r.client.Get(ctx, bookingKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, errors.New("booking not found")
	}
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := json.Unmarshal([]byte(data), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
