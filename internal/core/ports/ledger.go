package ports

import (
	"context"
	"time"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
)

// VehicleIDGenerator decides which id a newly registered vehicle is stored
// under. requested is whatever id the caller supplied, possibly empty.
type VehicleIDGenerator interface {
	NextVehicleID(requested string) (string, error)
}

// AvailabilityCache holds computed free-seat lists keyed by vehicle id.
type AvailabilityCache interface {
	GetSeats(ctx context.Context, vehicleID string) ([]int, bool, error)
	SetSeats(ctx context.Context, vehicleID string, seats []int, ttl time.Duration) error
	Invalidate(ctx context.Context, vehicleID string) error
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error
}
