//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/enginetest"
	sharedmock "hotel-reservation/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loaded(t *testing.T, gateway *sharedmock.MockGateway, rooms []*room.Room, bookings []*booking.Booking) *uow.HotelUoW {
	t.Helper()
	gateway.EXPECT().Load(gomock.Any()).Return(rooms, bookings, nil)
	u := uow.NewHotelUoW(gateway, enginetest.DiscardLogger())
	require.NoError(t, u.Load(context.Background()))
	return u
}

func TestHotelUoW_Load(t *testing.T) {
	t.Run("gateway failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockGateway(ctrl)
		cause := errors.New("corrupt snapshot")
		gateway.EXPECT().Load(gomock.Any()).Return(nil, nil, cause)

		err := uow.NewHotelUoW(gateway, enginetest.DiscardLogger()).Load(context.Background())
		require.Error(t, err)
		assert.True(t, errs.Is(err, cause))
	})

	t.Run("state becomes visible to readers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockGateway(ctrl)
		u := loaded(t, gateway, room.DefaultCatalog(), []*booking.Booking{builder.NewBookingBuilder().MustBuildDomain(t)})

		err := u.WithinReadOnly(context.Background(), func(_ context.Context, tx shared.ReadTx) error {
			assert.Len(t, tx.Rooms(), 8)
			assert.Len(t, tx.Bookings(), 1)
			_, ok := tx.RoomByNumber("302")
			assert.True(t, ok)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestHotelUoW_Within(t *testing.T) {
	ctx := context.Background()

	t.Run("flushes only touched collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockGateway(ctrl)
		u := loaded(t, gateway, room.DefaultCatalog(), nil)

		gateway.EXPECT().SaveRooms(gomock.Any(), gomock.Len(8)).Return(nil)

		err := u.Within(ctx, func(_ context.Context, tx shared.Tx) error {
			r, _ := tx.RoomByNumber("101")
			r.MarkOccupied()
			tx.TouchRooms()
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("failed work is not flushed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockGateway(ctrl)
		u := loaded(t, gateway, room.DefaultCatalog(), nil)
		boom := errors.New("boom")

		err := u.Within(ctx, func(_ context.Context, tx shared.Tx) error {
			tx.TouchRooms()
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("save failures are swallowed and memory stays authoritative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockGateway(ctrl)
		u := loaded(t, gateway, room.DefaultCatalog(), nil)

		gateway.EXPECT().SaveBookings(gomock.Any(), gomock.Len(1)).Return(errors.New("read-only filesystem"))

		added := builder.NewBookingBuilder().MustBuildDomain(t)
		err := u.Within(ctx, func(_ context.Context, tx shared.Tx) error {
			tx.AddBooking(added)
			return nil
		})
		require.NoError(t, err)

		err = u.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
			got, ok := tx.BookingByID(added.ID())
			assert.True(t, ok)
			assert.Same(t, added, got)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("clear empties the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockGateway(ctrl)
		u := loaded(t, gateway, nil, []*booking.Booking{builder.NewBookingBuilder().MustBuildDomain(t)})

		gateway.EXPECT().SaveBookings(gomock.Any(), gomock.Len(0)).Return(nil)

		require.NoError(t, u.Within(ctx, func(_ context.Context, tx shared.Tx) error {
			tx.ClearBookings()
			return nil
		}))
	})
}
