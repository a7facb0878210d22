//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/infra/pgstore"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/dbtest"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL    = "/api/rooms"
	searchURL   = "/api/rooms/search?checkIn=%s&checkOut=%s"
	bookingsURL = "/api/bookings"
	bookingURL  = "/api/bookings/%s"
	paymentURL  = "/api/bookings/%s/payment"
	abandonURL  = "/api/bookings/%s/abandon"
	statsURL    = "/api/stats"
	resetURL    = "/api/admin/reset"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// stay returns a YYYY-MM-DD range starting offset days from today.
func stay(offset, nights int) (string, string) {
	in := time.Now().UTC().AddDate(0, 0, offset)
	return in.Format("2006-01-02"), in.AddDate(0, 0, nights).Format("2006-01-02")
}

func (s *BookingSuite) createBooking(room string, offset, nights int) response.BookingResponse {
	t := s.T()
	checkIn, checkOut := stay(offset, nights)
	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.RoomNumber = room
		b.CheckIn, b.CheckOut = checkIn, checkOut
	}).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *BookingSuite) stats() response.StatsResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var stats response.StatsResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &stats))
	return stats
}

func (s *BookingSuite) search(offset, nights int) []response.RoomResponse {
	checkIn, checkOut := stay(offset, nights)
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(searchURL, checkIn, checkOut), nil)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var rooms []response.RoomResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &rooms))
	return rooms
}

// =============================================================================
// Catalog
// =============================================================================

func (s *BookingSuite) TestSeededCatalog() {
	s.Run("Normal case: a fresh hotel lists the default rooms", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL, nil)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var rooms []response.RoomResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &rooms))
		require.Len(s.T(), rooms, 8)
		s.Equal("101", rooms[0].Number)
		s.Equal("100.00", rooms[0].PricePerNight)

		s.Equal(response.StatsResponse{TotalRooms: 8, AvailableRooms: 8, TotalRevenue: "0.00"}, s.stats())
	})
}

// =============================================================================
// Booking lifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: create, pay and cancel", func() {
		t := s.T()

		created := s.createBooking("101", 10, 3)
		s.Equal("pending", created.Status)
		s.Equal("300.00", created.TotalAmount)
		s.Equal(3, created.Nights)

		s.Len(s.search(11, 1), 7, "held room drops out of overlapping searches")
		s.Len(s.search(13, 2), 8, "check-in on the check-out day is free")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentURL, created.ID), map[string]string{"method": "paypal"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var paid response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &paid))
		s.Equal("confirmed", paid.Status)
		s.Equal("paypal", paid.PaymentMethod)

		s.Equal(response.StatsResponse{TotalRooms: 8, AvailableRooms: 7, BookedRooms: 1, TotalRevenue: "300.00"}, s.stats())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, created.ID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		s.Equal(response.StatsResponse{TotalRooms: 8, AvailableRooms: 8, TotalRevenue: "0.00"}, s.stats())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, created.ID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "booking is already cancelled")
	})

	s.Run("Abnormal case: overlapping stay is rejected until the first is released", func() {
		t := s.T()

		first := s.createBooking("201", 20, 4)

		checkIn, checkOut := stay(22, 3)
		overlapping := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomNumber = "201"
			b.GuestName = "Bob Jones"
			b.CheckIn, b.CheckOut = checkIn, checkOut
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlapping)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room is not available")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(abandonURL, first.ID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlapping)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Abnormal case: party larger than the room", func() {
		checkIn, checkOut := stay(5, 1)
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guests = 3
			b.CheckIn, b.CheckOut = checkIn, checkOut
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "exceeds room capacity")
	})
}

// =============================================================================
// Persistence
// =============================================================================

func (s *BookingSuite) TestStateSurvivesRestart() {
	s.Run("Normal case: bookings and room flags reload from postgres", func() {
		t := s.T()

		kept := s.createBooking("301", 30, 2)
		cancelled := s.createBooking("302", 30, 2)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, cancelled.ID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var before []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &before))
		statsBefore := s.stats()

		payload := dbtest.SnapshotPayload(t, s.DB, pgstore.BookingsSnapshot)
		s.Contains(string(payload), kept.ID)

		s.Restart()

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var after []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &after))

		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("ledger changed across restart (-before +after):\n%s", diff)
		}
		s.Equal(statsBefore, s.stats())
	})

	s.Run("Normal case: reset clears the ledger for good", func() {
		t := s.T()

		s.createBooking("102", 3, 2)
		s.createBooking("103", 3, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resetURL, map[string]bool{"confirm": true})
		require.Equal(t, http.StatusNoContent, w.Code)
		s.Len(s.search(3, 2), 8)

		s.Restart()

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
		s.Equal(8, s.stats().AvailableRooms)
	})
}
