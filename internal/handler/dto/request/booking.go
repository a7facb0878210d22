package request

import (
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/usecase/commands"
)

type CreateBookingRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	GuestName  string `json:"guest_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty,max=32"`
	Guests     int    `json:"guests" binding:"required,min=1,max=10"`
	CheckIn    string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

func (r CreateBookingRequest) ToParams(now time.Time) (commands.CreateBookingParams, error) {
	guest, err := booking.NewGuest(r.GuestName, r.Email, r.Phone)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	period, err := parseFuturePeriod(r.CheckIn, r.CheckOut, now)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		RoomNumber: r.RoomNumber,
		Guest:      guest,
		Period:     period,
		Guests:     r.Guests,
	}, nil
}

// ConfirmPaymentRequest defaults to credit card when no method is given.
type ConfirmPaymentRequest struct {
	Method string `json:"method"`
}

func (r ConfirmPaymentRequest) ToMethod() (booking.PaymentMethod, error) {
	return booking.ParsePaymentMethod(r.Method)
}

type ResetDataRequest struct {
	Confirm bool `json:"confirm"`
}
