package domain

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a booking between a buyer and a seller. The user entity
// only ever lists the appointments where it is the buyer; scheduling rules
// live elsewhere.
type Appointment struct {
	ID              int64
	BuyerID         int64
	SellerProfileID int64
	StartsAt        time.Time
	EndsAt          time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
