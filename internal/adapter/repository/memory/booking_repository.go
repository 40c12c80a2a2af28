package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
)

// BookingRepository keeps bookings in confirmation order.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	if booking == nil {
		return fmt.Errorf("failed to insert booking: nil booking")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *BookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)

	return out, nil
}
