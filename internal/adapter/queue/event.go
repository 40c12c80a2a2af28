// Package queue publishes ledger events to RabbitMQ.
package queue

import (
	"time"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
)

// BookingConfirmedEvent is published once per recorded booking.
type BookingConfirmedEvent struct {
	BookingID      string `json:"booking_id"`
	VehicleID      string `json:"vehicle_id"`
	VehicleKind    string `json:"vehicle_kind"`
	VehicleInfo    string `json:"vehicle_info"`
	SeatNumber     int    `json:"seat_number"`
	PassengerName  string `json:"passenger_name"`
	PassportNumber string `json:"passport_number"`
	ConfirmedAt    string `json:"confirmed_at"`
}

func NewBookingConfirmedEvent(b *domain.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:      b.ID.String(),
		VehicleID:      b.VehicleID,
		VehicleKind:    string(b.VehicleKind),
		VehicleInfo:    b.VehicleInfo,
		SeatNumber:     b.SeatNumber,
		PassengerName:  b.Passenger.Name,
		PassportNumber: b.Passenger.PassportNumber,
		ConfirmedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
