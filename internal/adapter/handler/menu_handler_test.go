package handler_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/srgjo27/transit_ledger/internal/adapter/handler"
	"github.com/srgjo27/transit_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/transit_ledger/internal/core/ports"
	"github.com/srgjo27/transit_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(ids ports.VehicleIDGenerator) *services.LedgerService {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return services.NewLedgerService(memory.NewVehicleRepository(), memory.NewBookingRepository(), ids, services.WithLogger(log))
}

func run(t *testing.T, h *handler.MenuHandler, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	err := h.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, err)

	return out.String()
}

func TestMenu_BookingScenario(t *testing.T) {
	h := handler.NewMenuHandler(newService(services.ExternalIDs{}), true)

	out := run(t, h,
		"1", "bus", "1", "2", "A-B",
		"2", "Ann", "P-1", "1", "1",
		"4", "1",
		"2", "Bob", "P-2", "1", "1",
		"3",
		"0",
	)

	assert.Contains(t, out, "Bus 1 added")
	assert.Contains(t, out, "Booking confirmed: Passenger Ann, passport: P-1; Bus 1, 2 seats, route: A-B; seat 1")
	assert.Contains(t, out, "Free seats: 2")
	assert.Contains(t, out, "Seat taken:")
	assert.Equal(t, 1, strings.Count(out, "[CONFIRMED]"))
}

func TestMenu_SequentialIDsAndVehicleList(t *testing.T) {
	h := handler.NewMenuHandler(newService(services.NewSequentialIDs(101)), false)

	out := run(t, h,
		"1", "train", "3", "5",
		"1", "PLANE", "2", "A320",
		"5",
		"0",
	)

	assert.Contains(t, out, "Train 101 added")
	assert.Contains(t, out, "Plane 102 added")
	assert.Contains(t, out, "Train #101: 3 seats, 3 free")
	assert.Contains(t, out, "Plane #102: 2 seats, 2 free")
}

func TestMenu_ReportsErrorsAndReprompts(t *testing.T) {
	h := handler.NewMenuHandler(newService(nil), true)

	out := run(t, h,
		"9",
		"1", "ship",
		"1", "bus", "b1", "zero", "0", "A-B",
		"2", "Ann", "P-1", "missing", "1",
		"4", "missing",
		"3",
	)

	assert.Contains(t, out, "Unknown option")
	assert.Contains(t, out, `unknown vehicle kind "ship"`)
	assert.Contains(t, out, "Please enter a whole number")
	assert.Contains(t, out, "capacity must be positive")
	assert.Contains(t, out, `Not found: vehicle "missing": not found`)
	assert.Contains(t, out, "Bookings:\nnone")
}

func TestMenu_StopsOnCancelledContext(t *testing.T) {
	h := handler.NewMenuHandler(newService(nil), true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Run(ctx, strings.NewReader("3\n"), io.Discard)

	assert.ErrorIs(t, err, context.Canceled)
}
