//go:build unit

package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/converter"
	"hotel-reservation/internal/infra/filestore"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/enginetest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*filestore.Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	store, err := filestore.NewStore(dir, enginetest.DiscardLogger())
	require.NoError(t, err)
	return store, dir
}

func bookingRecords(bookings []*booking.Booking) []converter.BookingRecord {
	out := make([]converter.BookingRecord, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, converter.BookingToRecord(b))
	}
	return out
}

func roomRecords(rooms []*room.Room) []converter.RoomRecord {
	out := make([]converter.RoomRecord, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, converter.RoomToRecord(r))
	}
	return out
}

func TestStore_LoadWithoutFiles(t *testing.T) {
	store, _ := newStore(t)

	rooms, bookings, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	rooms := room.DefaultCatalog()
	rooms[2].MarkOccupied()
	bookings := []*booking.Booking{
		builder.NewBookingBuilder().MustBuildDomain(t),
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomNumber = "103"
			b.Status = booking.StatusConfirmed
			b.PaymentMethod = booking.PaymentPayPal
		}).MustBuildDomain(t),
	}

	require.NoError(t, store.SaveRooms(ctx, rooms))
	require.NoError(t, store.SaveBookings(ctx, bookings))

	// A fresh store over the same directory sees the same hotel.
	reopened, err := filestore.NewStore(dir, enginetest.DiscardLogger())
	require.NoError(t, err)
	gotRooms, gotBookings, err := reopened.Load(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(roomRecords(rooms), roomRecords(gotRooms)); diff != "" {
		t.Errorf("rooms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(bookingRecords(bookings), bookingRecords(gotBookings)); diff != "" {
		t.Errorf("bookings mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files must not be left behind")
}

func TestStore_EmptyLedgerIsWrittenAsEmptyArray(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, store.SaveBookings(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(dir, filestore.BookingsFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStore_CorruptFile(t *testing.T) {
	store, dir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, filestore.RoomsFile), []byte("{not json"), 0o644))

	_, _, err := store.Load(context.Background())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
}
