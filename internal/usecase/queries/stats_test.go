//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/enginetest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsQueries_Get(t *testing.T) {
	ctx := context.Background()

	withStatus := func(status booking.Status, total int64) *booking.Booking {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = status
			b.TotalAmount = decimal.NewFromInt(total)
			if status == booking.StatusConfirmed || status == booking.StatusCompleted {
				b.PaymentMethod = booking.PaymentCreditCard
			}
		}).MustBuildDomain(t)
	}

	rooms := []*room.Room{
		builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.Available = false }).MustBuildDomain(t),
		builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.Number = "102" }).MustBuildDomain(t),
		builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.Number = "103"; r.Available = false }).MustBuildDomain(t),
	}
	ledger := []*booking.Booking{
		withStatus(booking.StatusPending, 1000),
		withStatus(booking.StatusConfirmed, 300),
		withStatus(booking.StatusCompleted, 150),
		withStatus(booking.StatusCancelled, 5000),
	}

	hotel, _ := enginetest.NewHotel(t, rooms, ledger)

	stats, err := queries.NewStatsQueries(hotel).Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 1, stats.AvailableRooms)
	assert.Equal(t, 2, stats.BookedRooms)
	assert.Equal(t, "450.00", stats.TotalRevenue.StringFixed(2))
}

func TestStatsQueries_EmptyHotel(t *testing.T) {
	hotel, _ := enginetest.NewHotel(t, nil, nil)

	stats, err := queries.NewStatsQueries(hotel).Get(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRooms)
	assert.True(t, stats.TotalRevenue.IsZero())
}
