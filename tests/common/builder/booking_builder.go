//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/booking"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DefaultNow sits before the default stay so period checks pass.
var DefaultNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID            uuid.UUID
	RoomNumber    string
	GuestName     string
	Email         string
	Phone         string
	CheckIn       string
	CheckOut      string
	Guests        int
	Status        booking.Status
	TotalAmount   decimal.Decimal
	PaymentMethod booking.PaymentMethod
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		RoomNumber:  "101",
		GuestName:   "Alice Smith",
		Email:       "alice@example.com",
		Phone:       "555-0100",
		CheckIn:     "2025-06-01",
		CheckOut:    "2025-06-04",
		Guests:      2,
		Status:      booking.StatusPending,
		TotalAmount: decimal.NewFromInt(300),
		CreatedAt:   DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildPeriod() (booking.StayPeriod, error) {
	return booking.ParseStayPeriod(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildGuest() (booking.Guest, error) {
	return booking.NewGuest(b.GuestName, b.Email, b.Phone)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	guest, err := b.BuildGuest()
	if err != nil {
		return nil, err
	}
	period, err := b.BuildPeriod()
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(b.ID, b.RoomNumber, guest, period, b.Guests, b.Status, b.TotalAmount, b.PaymentMethod, b.CreatedAt), nil
}

func (b *BookingBuilder) MustBuildDomain(t *testing.T) *booking.Booking {
	t.Helper()
	bk, err := b.BuildDomain()
	require.NoError(t, err)
	return bk
}

func (b *BookingBuilder) BuildParams() (commands.CreateBookingParams, error) {
	guest, err := b.BuildGuest()
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	period, err := b.BuildPeriod()
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		RoomNumber: b.RoomNumber,
		Guest:      guest,
		Period:     period,
		Guests:     b.Guests,
	}, nil
}

func (b *BookingBuilder) MustBuildParams(t *testing.T) commands.CreateBookingParams {
	t.Helper()
	params, err := b.BuildParams()
	require.NoError(t, err)
	return params
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomNumber: b.RoomNumber,
		GuestName:  b.GuestName,
		Email:      b.Email,
		Phone:      b.Phone,
		Guests:     b.Guests,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	in, _ := time.Parse("2006-01-02", b.CheckIn)
	out, _ := time.Parse("2006-01-02", b.CheckOut)
	return &queries.BookingView{
		ID:            b.ID,
		RoomNumber:    b.RoomNumber,
		RoomCategory:  "standard",
		CategoryLabel: "Standard Room",
		Amenities:     "WiFi, TV, AC",
		PricePerNight: decimal.NewFromInt(100),
		GuestName:     b.GuestName,
		Email:         b.Email,
		Phone:         b.Phone,
		CheckIn:       in,
		CheckOut:      out,
		Nights:        int(out.Sub(in).Hours() / 24),
		Guests:        b.Guests,
		Status:        b.Status.String(),
		TotalAmount:   b.TotalAmount,
		PaymentMethod: b.PaymentMethod.String(),
		CreatedAt:     b.CreatedAt,
	}
}
