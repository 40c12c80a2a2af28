package domain

import (
	"fmt"
	"strings"
)

type VehicleKind string

const (
	VehicleBus   VehicleKind = "BUS"
	VehicleTrain VehicleKind = "TRAIN"
	VehiclePlane VehicleKind = "PLANE"
)

// ParseVehicleKind accepts the kind name in any case.
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch k := VehicleKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case VehicleBus, VehicleTrain, VehiclePlane:
		return k, nil
	default:
		return "", fmt.Errorf("unknown vehicle kind %q: %w", s, ErrInvalidVehicle)
	}
}

func (k VehicleKind) Title() string {
	switch k {
	case VehicleBus:
		return "Bus"
	case VehicleTrain:
		return "Train"
	case VehiclePlane:
		return "Plane"
	default:
		return "Vehicle"
	}
}

// Vehicle is a bookable transport. Only the payload field matching Kind is
// meaningful: Route for buses, Wagons for trains, Model for planes.
type Vehicle struct {
	ID       string
	Kind     VehicleKind
	Capacity int

	Route  string
	Wagons int
	Model  string

	bookedSeats map[int]struct{}
}

func NewBus(id string, capacity int, route string) (*Vehicle, error) {
	v, err := newVehicle(id, VehicleBus, capacity)
	if err != nil {
		return nil, err
	}

	v.Route = route
	return v, nil
}

func NewTrain(id string, capacity int, wagons int) (*Vehicle, error) {
	v, err := newVehicle(id, VehicleTrain, capacity)
	if err != nil {
		return nil, err
	}

	v.Wagons = wagons
	return v, nil
}

func NewPlane(id string, capacity int, model string) (*Vehicle, error) {
	v, err := newVehicle(id, VehiclePlane, capacity)
	if err != nil {
		return nil, err
	}

	v.Model = model
	return v, nil
}

func newVehicle(id string, kind VehicleKind, capacity int) (*Vehicle, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d: %w", capacity, ErrInvalidVehicle)
	}

	return &Vehicle{
		ID:          id,
		Kind:        kind,
		Capacity:    capacity,
		bookedSeats: make(map[int]struct{}),
	}, nil
}

func (v *Vehicle) InRange(seat int) bool {
	return seat >= 1 && seat <= v.Capacity
}

func (v *Vehicle) IsSeatFree(seat int) bool {
	if !v.InRange(seat) {
		return false
	}

	_, booked := v.bookedSeats[seat]
	return !booked
}

// AvailableSeats returns every free seat number in ascending order.
func (v *Vehicle) AvailableSeats() []int {
	seats := make([]int, 0, max(v.Capacity-len(v.bookedSeats), 0))
	for seat := 1; seat <= v.Capacity; seat++ {
		if _, booked := v.bookedSeats[seat]; !booked {
			seats = append(seats, seat)
		}
	}

	return seats
}

func (v *Vehicle) BookedCount() int {
	return len(v.bookedSeats)
}

// BookSeat marks an in-range seat as booked. Booking an already booked seat
// is a no-op; out-of-range seats are ignored.
func (v *Vehicle) BookSeat(seat int) {
	if !v.InRange(seat) {
		return
	}

	if v.bookedSeats == nil {
		v.bookedSeats = make(map[int]struct{})
	}
	v.bookedSeats[seat] = struct{}{}
}

// ReleaseSeat undoes a BookSeat whose booking was never recorded.
func (v *Vehicle) ReleaseSeat(seat int) {
	delete(v.bookedSeats, seat)
}

func (v *Vehicle) Clone() *Vehicle {
	c := *v
	c.bookedSeats = make(map[int]struct{}, len(v.bookedSeats))
	for seat := range v.bookedSeats {
		c.bookedSeats[seat] = struct{}{}
	}

	return &c
}

func (v *Vehicle) Info() string {
	switch v.Kind {
	case VehicleBus:
		return fmt.Sprintf("Bus %s, %d seats, route: %s", v.ID, v.Capacity, v.Route)
	case VehicleTrain:
		return fmt.Sprintf("Train %s, %d seats, wagons: %d", v.ID, v.Capacity, v.Wagons)
	case VehiclePlane:
		return fmt.Sprintf("Plane %s, %d seats, model: %s", v.ID, v.Capacity, v.Model)
	default:
		return fmt.Sprintf("Vehicle %s, %d seats", v.ID, v.Capacity)
	}
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("%s #%s: %d seats, %d free", v.Kind.Title(), v.ID, v.Capacity, v.Capacity-len(v.bookedSeats))
}
