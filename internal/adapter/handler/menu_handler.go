package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
	"github.com/srgjo27/transit_ledger/internal/core/services"
)

const menu = `
1. Add transport
2. Book a seat
3. Show bookings
4. Show free seats
5. Show transport
0. Exit`

// MenuHandler drives the ledger from a line-oriented console.
type MenuHandler struct {
	svc         *services.LedgerService
	promptForID bool
}

// NewMenuHandler builds a handler; promptForID is false when the ledger
// assigns vehicle ids itself.
func NewMenuHandler(svc *services.LedgerService, promptForID bool) *MenuHandler {
	return &MenuHandler{svc: svc, promptForID: promptForID}
}

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// Run reads commands from in until "0", end of input or ctx is cancelled.
func (h *MenuHandler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := &session{scanner: bufio.NewScanner(in), out: out}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, menu)

		choice, err := s.prompt("Choose: ")
		if err != nil {
			return eofIsNil(err)
		}

		switch choice {
		case "1":
			err = h.addVehicle(ctx, s)
		case "2":
			err = h.book(ctx, s)
		case "3":
			err = h.listBookings(ctx, s)
		case "4":
			err = h.showSeats(ctx, s)
		case "5":
			err = h.listVehicles(ctx, s)
		case "0":
			return nil
		default:
			s.println("Unknown option")
		}

		if err != nil {
			return eofIsNil(err)
		}
	}
}

func (h *MenuHandler) addVehicle(ctx context.Context, s *session) error {
	kindStr, err := s.prompt("Type (bus/train/plane): ")
	if err != nil {
		return err
	}

	kind, err := domain.ParseVehicleKind(kindStr)
	if err != nil {
		s.println(err.Error())
		return nil
	}

	var id string
	if h.promptForID {
		if id, err = s.prompt("Transport ID: "); err != nil {
			return err
		}
	}

	capacity, err := s.promptInt("Seats: ")
	if err != nil {
		return err
	}

	var vehicle *domain.Vehicle
	switch kind {
	case domain.VehicleBus:
		route, err := s.prompt("Route: ")
		if err != nil {
			return err
		}
		vehicle, err = domain.NewBus(id, capacity, route)
		if err != nil {
			s.println(err.Error())
			return nil
		}
	case domain.VehicleTrain:
		wagons, err := s.promptInt("Wagons: ")
		if err != nil {
			return err
		}
		vehicle, err = domain.NewTrain(id, capacity, wagons)
		if err != nil {
			s.println(err.Error())
			return nil
		}
	case domain.VehiclePlane:
		model, err := s.prompt("Model: ")
		if err != nil {
			return err
		}
		vehicle, err = domain.NewPlane(id, capacity, model)
		if err != nil {
			s.println(err.Error())
			return nil
		}
	}

	assigned, err := h.svc.RegisterVehicle(ctx, vehicle)
	if err != nil {
		s.println(err.Error())
		return nil
	}

	s.println(fmt.Sprintf("%s %s added", kind.Title(), assigned))
	return nil
}

func (h *MenuHandler) book(ctx context.Context, s *session) error {
	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}

	passport, err := s.prompt("Passport: ")
	if err != nil {
		return err
	}

	vehicleID, err := s.prompt("Transport ID: ")
	if err != nil {
		return err
	}

	seat, err := s.promptInt("Seat: ")
	if err != nil {
		return err
	}

	resp, err := h.svc.Book(ctx, services.BookSeatRequest{
		PassengerName:  name,
		PassportNumber: passport,
		VehicleID:      vehicleID,
		SeatNumber:     seat,
	})
	if err != nil {
		s.println(describe(err))
		return nil
	}

	s.println(resp.Confirmation)
	return nil
}

func (h *MenuHandler) listBookings(ctx context.Context, s *session) error {
	lines, err := h.svc.ListBookings(ctx)
	if err != nil {
		s.println(err.Error())
		return nil
	}

	s.println("Bookings:")
	if len(lines) == 0 {
		s.println("none")
	}
	for _, line := range lines {
		s.println(line)
	}

	return nil
}

func (h *MenuHandler) showSeats(ctx context.Context, s *session) error {
	vehicleID, err := s.prompt("Transport ID: ")
	if err != nil {
		return err
	}

	seats, err := h.svc.AvailableSeats(ctx, vehicleID)
	if err != nil {
		s.println(describe(err))
		return nil
	}

	if len(seats) == 0 {
		s.println("No free seats")
		return nil
	}

	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = strconv.Itoa(seat)
	}

	s.println("Free seats: " + strings.Join(parts, ", "))
	return nil
}

func (h *MenuHandler) listVehicles(ctx context.Context, s *session) error {
	lines, err := h.svc.ListVehicles(ctx)
	if err != nil {
		s.println(err.Error())
		return nil
	}

	s.println("Transport:")
	if len(lines) == 0 {
		s.println("none")
	}
	for _, line := range lines {
		s.println(line)
	}

	return nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, domain.ErrSeatUnavailable):
		return "Seat taken: " + err.Error()
	default:
		return err.Error()
	}
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.scanner.Text()), nil
}

// promptInt asks again until the answer parses as an integer.
func (s *session) promptInt(label string) (int, error) {
	for {
		raw, err := s.prompt(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(raw)
		if err == nil {
			return n, nil
		}

		s.println("Please enter a whole number")
	}
}

func eofIsNil(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
