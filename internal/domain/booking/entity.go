package booking

import (
	"errors"
	"time"

	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStayPeriod    = errors.New("check-out date must be after check-in date")
	ErrInvalidDate          = errors.New("date must use the YYYY-MM-DD format")
	ErrEmptyGuestName       = errors.New("guest name cannot be empty")
	ErrInvalidGuestCount    = errors.New("number of guests must be at least 1")
	ErrCapacityExceeded     = errors.New("number of guests exceeds room capacity")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrBookingCancelled     = errors.New("cannot confirm a cancelled booking")
	ErrBookingCompleted     = errors.New("booking is already completed")
	ErrCheckInInPast        = errors.New("check-in date cannot be in the past")
)

type Booking struct {
	id            uuid.UUID
	roomNumber    string
	guest         Guest
	period        StayPeriod
	guests        int
	status        Status
	totalAmount   decimal.Decimal
	paymentMethod PaymentMethod
	createdAt     time.Time
}

// New creates a pending booking priced at nights x the room's nightly rate.
func New(r *room.Room, guest Guest, period StayPeriod, guests int, now time.Time) (*Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !r.CanHost(guests) {
		return nil, ErrCapacityExceeded
	}

	return &Booking{
		id:          uuid.New(),
		roomNumber:  r.Number(),
		guest:       guest,
		period:      period,
		guests:      guests,
		status:      StatusPending,
		totalAmount: r.PricePerNight().Times(period.Nights()),
		createdAt:   now.UTC(),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	roomNumber string,
	guest Guest,
	period StayPeriod,
	guests int,
	status Status,
	totalAmount decimal.Decimal,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		roomNumber:    roomNumber,
		guest:         guest,
		period:        period,
		guests:        guests,
		status:        status,
		totalAmount:   totalAmount,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}
}

// Confirm records a simulated payment. Confirming twice is a no-op.
func (b *Booking) Confirm(method PaymentMethod) error {
	switch b.status {
	case StatusCancelled:
		return ErrBookingCancelled
	case StatusCompleted:
		return ErrBookingCompleted
	case StatusConfirmed:
		return nil
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	b.status = StatusConfirmed
	b.paymentMethod = method
	return nil
}

func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrBookingCompleted
	}
	b.status = StatusCancelled
	return nil
}

// Blocks reports whether this booking keeps roomNumber busy during period.
func (b *Booking) Blocks(roomNumber string, period StayPeriod) bool {
	return b.roomNumber == roomNumber && b.status.HoldsRoom() && b.period.Overlaps(period)
}

func (b *Booking) Revenue() decimal.Decimal {
	if !b.status.CountsAsRevenue() {
		return decimal.Zero
	}
	return b.totalAmount
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RoomNumber() string           { return b.roomNumber }
func (b *Booking) Guest() Guest                 { return b.guest }
func (b *Booking) Period() StayPeriod           { return b.period }
func (b *Booking) Nights() int                  { return b.period.Nights() }
func (b *Booking) NumberOfGuests() int          { return b.guests }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) TotalAmount() decimal.Decimal { return b.totalAmount }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
