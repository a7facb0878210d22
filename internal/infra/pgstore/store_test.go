//go:build unit

package pgstore_test

import (
	"context"
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/converter"
	"hotel-reservation/internal/infra/pgstore"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/enginetest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// payloadRow answers a single-column SELECT.
type payloadRow struct {
	payload []byte
	err     error
}

func (r payloadRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

func snapshotArgs(name string) []any { return []any{name} }

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	roomsJSON, err := converter.EncodeRooms(room.DefaultCatalog())
	require.NoError(t, err)
	bookingsJSON, err := converter.EncodeBookings([]*booking.Booking{builder.NewBookingBuilder().MustBuildDomain(t)})
	require.NoError(t, err)

	testCases := []struct {
		name         string
		roomsRow     payloadRow
		bookingsRow  payloadRow
		wantRooms    int
		wantBookings int
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name:         "success: both snapshots present",
			roomsRow:     payloadRow{payload: roomsJSON},
			bookingsRow:  payloadRow{payload: bookingsJSON},
			wantRooms:    8,
			wantBookings: 1,
		},
		{
			name:        "success: nothing saved yet",
			roomsRow:    payloadRow{err: pgx.ErrNoRows},
			bookingsRow: payloadRow{err: pgx.ErrNoRows},
		},
		{
			name:        "error: connection lost",
			roomsRow:    payloadRow{err: assert.AnError},
			bookingsRow: payloadRow{err: pgx.ErrNoRows},
			expectKind:  infra.KindDBFailure,
		},
		{
			name:        "error: corrupt payload",
			roomsRow:    payloadRow{payload: []byte(`{"broken":`)},
			bookingsRow: payloadRow{err: pgx.ErrNoRows},
			expectKind:  infra.KindDecodeFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.Anything, snapshotArgs(pgstore.RoomsSnapshot)).Return(tc.roomsRow).Maybe()
			db.On("QueryRow", mock.Anything, mock.Anything, snapshotArgs(pgstore.BookingsSnapshot)).Return(tc.bookingsRow).Maybe()

			rooms, bookings, err := pgstore.NewStore(db, enginetest.DiscardLogger()).Load(ctx)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rooms)
			assert.NotNil(t, bookings)
			assert.Len(t, rooms, tc.wantRooms)
			assert.Len(t, bookings, tc.wantBookings)
			db.AssertExpectations(t)
		})
	}
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rooms upserted under their snapshot name", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
			return len(args) == 2 && args[0] == pgstore.RoomsSnapshot
		})).Return(pgconn.NewCommandTag("INSERT 0 1"), nil).Once()

		err := pgstore.NewStore(db, enginetest.DiscardLogger()).SaveRooms(ctx, room.DefaultCatalog())
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("success: empty ledger stored as an empty array", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
			if len(args) != 2 {
				return false
			}
			payload, ok := args[1].([]byte)
			return args[0] == pgstore.BookingsSnapshot && ok && string(payload) == "[]"
		})).Return(pgconn.NewCommandTag("INSERT 0 1"), nil).Once()

		require.NoError(t, pgstore.NewStore(db, enginetest.DiscardLogger()).SaveBookings(ctx, nil))
		db.AssertExpectations(t)
	})

	t.Run("error: write failure is a DB failure", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError)

		err := pgstore.NewStore(db, enginetest.DiscardLogger()).SaveBookings(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: schema creation failure", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError)

		err := pgstore.NewStore(db, enginetest.DiscardLogger()).EnsureSchema(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
