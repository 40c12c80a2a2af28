package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
)

// Booking is immutable once recorded. VehicleInfo is the vehicle description
// at the time the seat was reserved.
type Booking struct {
	ID          uuid.UUID
	Passenger   Passenger
	VehicleID   string
	VehicleKind VehicleKind
	VehicleInfo string
	SeatNumber  int
	Status      BookingStatus
	CreatedAt   time.Time
}

func NewBooking(p Passenger, v *Vehicle, seat int) *Booking {
	return &Booking{
		ID:          uuid.New(),
		Passenger:   p,
		VehicleID:   v.ID,
		VehicleKind: v.Kind,
		VehicleInfo: v.Info(),
		SeatNumber:  seat,
		Status:      BookingConfirmed,
		CreatedAt:   time.Now(),
	}
}

func (b *Booking) Confirmation() string {
	return fmt.Sprintf("Booking confirmed: %s; %s; seat %d", b.Passenger, b.VehicleInfo, b.SeatNumber)
}

func (b *Booking) String() string {
	return fmt.Sprintf("[%s] %s -> %s, seat %d", b.Status, b.Passenger, b.VehicleInfo, b.SeatNumber)
}
