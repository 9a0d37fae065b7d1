package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	BookingID  string    `bson:"bookingId" json:"bookingId"` // Unique booking identifier (UUID, assigned on save if absent)
	ServiceIDs []string  `bson:"serviceIds" json:"serviceIds"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time       string    `bson:"time" json:"time"` // "HH:mm"
	Name       string    `bson:"name" json:"name"`
	Address    string    `bson:"address" json:"address"`
	Mobile     string    `bson:"mobile" json:"mobile"`
	Email      string    `bson:"email" json:"email"`
	Subtotal   int       `bson:"subtotal" json:"subtotal"`
	Discount   int       `bson:"discount" json:"discount"`
	Total      int       `bson:"total" json:"total"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// TimeSlot is a concrete suggested or selected appointment slot.
type TimeSlot struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // "HH:mm"
}
