//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	rooms, bookings, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
	assert.Empty(t, bookings)

	catalog := room.DefaultCatalog()
	pending := builder.NewBookingBuilder().MustBuildDomain(t)
	require.NoError(t, store.SaveRooms(ctx, catalog))
	require.NoError(t, store.SaveBookings(ctx, []*booking.Booking{pending}))

	// Mutations after a save stay out of the snapshot.
	catalog[0].MarkOccupied()
	require.NoError(t, pending.Cancel())

	rooms, bookings, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, len(catalog))
	assert.True(t, rooms[0].IsAvailable())
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.StatusPending, bookings[0].Status())
	assert.Equal(t, pending.ID(), bookings[0].ID())
}
