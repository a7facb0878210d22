//go:build unit

package converter_test

import (
	"testing"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra/converter"
	"hotel-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyCollections(t *testing.T) {
	rooms, err := converter.EncodeRooms(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(rooms))

	bookings, err := converter.EncodeBookings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bookings))
}

func TestBookingRecord(t *testing.T) {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusConfirmed
		b.PaymentMethod = booking.PaymentDebitCard
		b.TotalAmount = decimal.RequireFromString("299.85")
	})

	rec := converter.BookingToRecord(b.MustBuildDomain(t))

	want := converter.BookingRecord{
		ID:            b.ID.String(),
		RoomNumber:    "101",
		GuestName:     "Alice Smith",
		Email:         "alice@example.com",
		Phone:         "555-0100",
		CheckIn:       "2025-06-01",
		CheckOut:      "2025-06-04",
		Guests:        2,
		Status:        "confirmed",
		TotalAmount:   "299.85",
		PaymentMethod: "debit_card",
		CreatedAt:     builder.DefaultNow,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("BookingToRecord() mismatch (-want +got):\n%s", diff)
	}

	back, err := converter.BookingFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, b.ID, back.ID())
	assert.Equal(t, booking.StatusConfirmed, back.Status())
	assert.Equal(t, booking.PaymentDebitCard, back.PaymentMethod())
	assert.True(t, back.TotalAmount().Equal(decimal.RequireFromString("299.85")))
	assert.Equal(t, 3, back.Nights())
}

func TestDecodeRejectsBadRecords(t *testing.T) {
	valid := builder.NewBookingBuilder()

	bookingCases := []struct {
		name   string
		mutate func(*converter.BookingRecord)
	}{
		{"bad id", func(r *converter.BookingRecord) { r.ID = "not-a-uuid" }},
		{"bad date", func(r *converter.BookingRecord) { r.CheckIn = "06/01/2025" }},
		{"inverted period", func(r *converter.BookingRecord) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }},
		{"unknown status", func(r *converter.BookingRecord) { r.Status = "lost" }},
		{"bad total", func(r *converter.BookingRecord) { r.TotalAmount = "three hundred" }},
		{"unknown method", func(r *converter.BookingRecord) { r.PaymentMethod = "barter" }},
		{"blank guest", func(r *converter.BookingRecord) { r.GuestName = "  " }},
	}
	for _, tc := range bookingCases {
		t.Run("booking: "+tc.name, func(t *testing.T) {
			rec := converter.BookingToRecord(valid.MustBuildDomain(t))
			tc.mutate(&rec)
			_, err := converter.BookingFromRecord(rec)
			assert.Error(t, err)
		})
	}

	roomCases := []struct {
		name   string
		mutate func(*converter.RoomRecord)
	}{
		{"unknown category", func(r *converter.RoomRecord) { r.Category = "penthouse" }},
		{"bad price", func(r *converter.RoomRecord) { r.PricePerNight = "free" }},
		{"zero capacity", func(r *converter.RoomRecord) { r.MaxCapacity = 0 }},
	}
	for _, tc := range roomCases {
		t.Run("room: "+tc.name, func(t *testing.T) {
			rec := builder.NewRoomBuilder().BuildRecord()
			tc.mutate(&rec)
			_, err := converter.RoomFromRecord(rec)
			assert.Error(t, err)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := converter.DecodeRooms([]byte(`{"number":`))
		assert.Error(t, err)
		_, err = converter.DecodeBookings([]byte(`[{]`))
		assert.Error(t, err)
	})
}

func TestRoomsRoundTrip(t *testing.T) {
	catalog := room.DefaultCatalog()
	catalog[0].MarkOccupied()

	data, err := converter.EncodeRooms(catalog)
	require.NoError(t, err)

	decoded, err := converter.DecodeRooms(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(catalog))

	for i := range catalog {
		assert.Equal(t, converter.RoomToRecord(catalog[i]), converter.RoomToRecord(decoded[i]))
	}
	assert.False(t, decoded[0].IsAvailable())
}
