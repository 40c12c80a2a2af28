package memory_test

import (
	"context"
	"testing"

	"github.com/srgjo27/transit_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/transit_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRepository_SaveOverwrites(t *testing.T) {
	repo := memory.NewVehicleRepository()
	ctx := context.Background()

	first, _ := domain.NewBus("1", 10, "A-B")
	second, _ := domain.NewPlane("1", 3, "A320")

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.VehiclePlane, got.Kind)
	assert.Equal(t, 3, got.Capacity)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestVehicleRepository_GetByIDNotFound(t *testing.T) {
	repo := memory.NewVehicleRepository()

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestVehicleRepository_MarkSeatBooked(t *testing.T) {
	repo := memory.NewVehicleRepository()
	ctx := context.Background()
	v, _ := domain.NewTrain("t1", 2, 1)
	require.NoError(t, repo.Save(ctx, v))

	require.NoError(t, repo.MarkSeatBooked(ctx, "t1", 2))
	assert.ErrorIs(t, repo.MarkSeatBooked(ctx, "t1", 2), domain.ErrSeatUnavailable)
	assert.ErrorIs(t, repo.MarkSeatBooked(ctx, "t1", 3), domain.ErrSeatUnavailable)
	assert.ErrorIs(t, repo.MarkSeatBooked(ctx, "nope", 1), domain.ErrNotFound)

	got, _ := repo.GetByID(ctx, "t1")
	assert.Equal(t, []int{1}, got.AvailableSeats())

	require.NoError(t, repo.ReleaseSeat(ctx, "t1", 2))
	got, _ = repo.GetByID(ctx, "t1")
	assert.Equal(t, []int{1, 2}, got.AvailableSeats())
}

func TestVehicleRepository_ReturnsClones(t *testing.T) {
	repo := memory.NewVehicleRepository()
	ctx := context.Background()
	v, _ := domain.NewBus("1", 2, "A-B")
	require.NoError(t, repo.Save(ctx, v))

	got, _ := repo.GetByID(ctx, "1")
	got.BookSeat(1)

	fresh, _ := repo.GetByID(ctx, "1")
	assert.True(t, fresh.IsSeatFree(1))
}

func TestBookingRepository_KeepsInsertionOrder(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	bus, _ := domain.NewBus("1", 5, "A-B")

	for seat := 3; seat >= 1; seat-- {
		require.NoError(t, repo.CreateBooking(ctx, domain.NewBooking(domain.Passenger{Name: "P"}, bus, seat)))
	}

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, 3, bookings[0].SeatNumber)
	assert.Equal(t, 2, bookings[1].SeatNumber)
	assert.Equal(t, 1, bookings[2].SeatNumber)
}
