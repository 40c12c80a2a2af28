package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
)

// VehicleRepository stores vehicles by id. Callers always receive clones, so
// seat state only changes through MarkSeatBooked and ReleaseSeat.
type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{vehicles: make(map[string]*domain.Vehicle)}
}

// Save inserts the vehicle, replacing any vehicle with the same id.
func (r *VehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle == nil {
		return fmt.Errorf("nil vehicle: %w", domain.ErrInvalidVehicle)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.vehicles[vehicle.ID] = vehicle.Clone()
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return nil, fmt.Errorf("vehicle %q: %w", vehicleID, domain.ErrNotFound)
	}

	return v.Clone(), nil
}

// List returns all vehicles ordered by id.
func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]*domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		vehicles = append(vehicles, v.Clone())
	}

	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].ID < vehicles[j].ID
	})

	return vehicles, nil
}

// MarkSeatBooked books the seat only if it is still free.
func (r *VehicleRepository) MarkSeatBooked(ctx context.Context, vehicleID string, seat int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return fmt.Errorf("vehicle %q: %w", vehicleID, domain.ErrNotFound)
	}

	if !v.IsSeatFree(seat) {
		return fmt.Errorf("seat %d on vehicle %q: %w", seat, vehicleID, domain.ErrSeatUnavailable)
	}

	v.BookSeat(seat)
	return nil
}

func (r *VehicleRepository) ReleaseSeat(ctx context.Context, vehicleID string, seat int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return fmt.Errorf("vehicle %q: %w", vehicleID, domain.ErrNotFound)
	}

	v.ReleaseSeat(seat)
	return nil
}
