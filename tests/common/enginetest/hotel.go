//go:build unit || e2e

package enginetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/infra/uow"

	"github.com/stretchr/testify/require"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewHotel returns a loaded hotel backed by an in-memory store holding rooms and bookings.
func NewHotel(t *testing.T, rooms []*room.Room, bookings []*booking.Booking) (*uow.HotelUoW, *memstore.Store) {
	t.Helper()

	ctx := context.Background()
	store := memstore.NewStore()
	require.NoError(t, store.SaveRooms(ctx, rooms))
	require.NoError(t, store.SaveBookings(ctx, bookings))

	hotel := uow.NewHotelUoW(store, DiscardLogger())
	require.NoError(t, hotel.Load(ctx))
	return hotel, store
}

// Persisted reads back what the store currently holds.
func Persisted(t *testing.T, store *memstore.Store) ([]*room.Room, []*booking.Booking) {
	t.Helper()

	rooms, bookings, err := store.Load(context.Background())
	require.NoError(t, err)
	return rooms, bookings
}
