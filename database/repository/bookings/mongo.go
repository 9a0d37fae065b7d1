package bookingsRepo

import (
	"context"

	"salesbot/database"
	"salesbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRepo struct {
	coll *mongo.Collection
}

// NewMongoRepo returns a booking Repository backed by MongoDB.
func NewMongoRepo() Repository {
	db := database.MongoClient.Database("salesbot")
	return &mongoRepo{coll: db.Collection("bookings")}
}

func (r *mongoRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.BookingID, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
