package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
	"github.com/srgjo27/transit_ledger/internal/core/ports"
)

type BookSeatRequest struct {
	PassengerName  string
	PassportNumber string
	VehicleID      string
	SeatNumber     int
}

type BookSeatResponse struct {
	BookingID    string
	Confirmation string
	Status       string
	CreatedAt    string
}

// LedgerService owns the vehicles and bookings of one process. Booking a seat
// is serialized per vehicle.
type LedgerService struct {
	vehicleRepo ports.VehicleRepository
	bookingRepo ports.BookingRepository
	ids         ports.VehicleIDGenerator

	cache     ports.AvailabilityCache
	cacheTTL  time.Duration
	publisher ports.EventPublisher
	log       *logrus.Logger

	locksMu sync.Mutex
	locks   map[string]*vehicleLock
}

type Option func(*LedgerService)

func WithCache(cache ports.AvailabilityCache, ttl time.Duration) Option {
	return func(s *LedgerService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *LedgerService) {
		s.publisher = publisher
	}
}

func WithLogger(log *logrus.Logger) Option {
	return func(s *LedgerService) {
		if log != nil {
			s.log = log
		}
	}
}

func NewLedgerService(vehicleRepo ports.VehicleRepository, bookingRepo ports.BookingRepository, ids ports.VehicleIDGenerator, opts ...Option) *LedgerService {
	if ids == nil {
		ids = ExternalIDs{}
	}

	s := &LedgerService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		ids:         ids,
		log:         logrus.StandardLogger(),
		locks:       make(map[string]*vehicleLock),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterVehicle stores the vehicle under the id chosen by the id generator,
// replacing any vehicle already stored under that id. It returns the id used.
func (s *LedgerService) RegisterVehicle(ctx context.Context, vehicle *domain.Vehicle) (string, error) {
	if vehicle == nil {
		return "", fmt.Errorf("nil vehicle: %w", domain.ErrInvalidVehicle)
	}

	id, err := s.ids.NextVehicleID(vehicle.ID)
	if err != nil {
		return "", err
	}

	v := vehicle.Clone()
	v.ID = id

	unlock := s.lockVehicle(id)
	defer unlock()

	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return "", fmt.Errorf("failed to register vehicle %q: %w", id, err)
	}

	s.invalidate(ctx, id)

	s.log.WithFields(logrus.Fields{
		"vehicle_id": id,
		"kind":       v.Kind,
		"capacity":   v.Capacity,
	}).Info("vehicle registered")

	return id, nil
}

// AvailableSeats answers from the cache only for vehicles registered in this
// ledger; unknown ids fail with domain.ErrNotFound.
func (s *LedgerService) AvailableSeats(ctx context.Context, vehicleID string) ([]int, error) {
	unlock := s.lockVehicle(vehicleID)
	defer unlock()

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		seats, ok, err := s.cache.GetSeats(ctx, vehicleID)
		if err != nil {
			s.log.WithError(err).WithField("vehicle_id", vehicleID).Warn("seat cache read failed")
		} else if ok {
			return seats, nil
		}
	}

	seats := vehicle.AvailableSeats()

	if s.cache != nil {
		if err := s.cache.SetSeats(ctx, vehicleID, seats, s.cacheTTL); err != nil {
			s.log.WithError(err).WithField("vehicle_id", vehicleID).Warn("seat cache write failed")
		}
	}

	return seats, nil
}

// Book reserves one seat for the passenger. It fails with domain.ErrNotFound
// for an unknown vehicle and domain.ErrSeatUnavailable when the seat is out
// of range or already booked; a failed call leaves the ledger unchanged.
func (s *LedgerService) Book(ctx context.Context, req BookSeatRequest) (*BookSeatResponse, error) {
	passenger := domain.Passenger{
		Name:           req.PassengerName,
		PassportNumber: req.PassportNumber,
	}

	entry := s.log.WithFields(logrus.Fields{
		"vehicle_id": req.VehicleID,
		"seat":       req.SeatNumber,
	})

	unlock := s.lockVehicle(req.VehicleID)
	booking, err := s.book(ctx, passenger, req.VehicleID, req.SeatNumber)
	unlock()

	if err != nil {
		entry.WithError(err).Info("booking rejected")
		return nil, err
	}

	entry.WithField("booking_id", booking.ID).Info("booking confirmed")

	if s.publisher != nil {
		if err := s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
			entry.WithError(err).Warn("failed to publish booking confirmation")
		}
	}

	return &BookSeatResponse{
		BookingID:    booking.ID.String(),
		Confirmation: booking.Confirmation(),
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt.Format(time.RFC3339),
	}, nil
}

// book must be called with the vehicle lock held.
func (s *LedgerService) book(ctx context.Context, passenger domain.Passenger, vehicleID string, seat int) (*domain.Booking, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if !vehicle.IsSeatFree(seat) {
		return nil, fmt.Errorf("seat %d on vehicle %q: %w", seat, vehicleID, domain.ErrSeatUnavailable)
	}

	if err := s.vehicleRepo.MarkSeatBooked(ctx, vehicleID, seat); err != nil {
		return nil, err
	}

	booking := domain.NewBooking(passenger, vehicle, seat)

	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		s.rollbackSeat(ctx, vehicleID, seat)
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	s.invalidate(ctx, vehicleID)

	return booking, nil
}

// ListBookings renders every booking in confirmation order.
func (s *LedgerService) ListBookings(ctx context.Context) ([]string, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(bookings))
	for i := range bookings {
		lines = append(lines, bookings[i].String())
	}

	return lines, nil
}

func (s *LedgerService) ListVehicles(ctx context.Context) ([]string, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		lines = append(lines, v.String())
	}

	return lines, nil
}

func (s *LedgerService) rollbackSeat(ctx context.Context, vehicleID string, seat int) {
	if err := s.vehicleRepo.ReleaseSeat(ctx, vehicleID, seat); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"vehicle_id": vehicleID,
			"seat":       seat,
		}).Error("failed to release seat after booking failure")
	}
}

func (s *LedgerService) invalidate(ctx context.Context, vehicleID string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, vehicleID); err != nil {
		s.log.WithError(err).WithField("vehicle_id", vehicleID).Warn("seat cache invalidation failed")
	}
}

// vehicleLock is dropped from the map once no caller holds or waits on it.
type vehicleLock struct {
	mu   sync.Mutex
	refs int
}

func (s *LedgerService) lockVehicle(vehicleID string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[vehicleID]
	if !ok {
		l = &vehicleLock{}
		s.locks[vehicleID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, vehicleID)
		}
		s.locksMu.Unlock()
	}
}
