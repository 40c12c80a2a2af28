package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/srgjo27/transit_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	declareErr error
	publishErr error
	closed     bool
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	if f.declareErr != nil {
		return amqp.Queue{}, f.declareErr
	}

	f.declared = append(f.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}

	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func testBooking(t *testing.T) *domain.Booking {
	t.Helper()

	plane, err := domain.NewPlane("SU100", 180, "A320")
	require.NoError(t, err)

	return domain.NewBooking(domain.Passenger{Name: "Ann", PassportNumber: "P-1"}, plane, 12)
}

func TestPublishBookingConfirmed(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "")
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultBookingQueue}, ch.declared)

	b := testBooking(t)
	require.NoError(t, p.PublishBookingConfirmed(context.Background(), b))

	require.Len(t, ch.published, 1)
	assert.Equal(t, DefaultBookingQueue, ch.keys[0])

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, b.ID.String(), msg.MessageId)

	var ev BookingConfirmedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &ev))
	assert.Equal(t, b.ID.String(), ev.BookingID)
	assert.Equal(t, "SU100", ev.VehicleID)
	assert.Equal(t, "PLANE", ev.VehicleKind)
	assert.Equal(t, 12, ev.SeatNumber)
	assert.Equal(t, "Ann", ev.PassengerName)
}

func TestNewPublisher_DeclareFails(t *testing.T) {
	_, err := newPublisher(&fakeChannel{declareErr: errors.New("access refused")}, "bookings")

	assert.ErrorContains(t, err, "queue declare")
}

func TestPublishBookingConfirmed_PublishFails(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "bookings")
	require.NoError(t, err)

	ch.publishErr = errors.New("channel closed")
	err = p.PublishBookingConfirmed(context.Background(), testBooking(t))

	assert.ErrorContains(t, err, "rabbitmq publish")
}

func TestClose_WithoutConnection(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "bookings")
	require.NoError(t, err)

	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
