package ports

import (
	"context"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
)

type VehicleRepository interface {
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	MarkSeatBooked(ctx context.Context, vehicleID string, seat int) error
	ReleaseSeat(ctx context.Context, vehicleID string, seat int) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}
