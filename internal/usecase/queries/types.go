package queries

import (
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomView is the read model of a catalog entry.
type RoomView struct {
	Number        string          `json:"number"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"category_label"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxCapacity   int             `json:"max_capacity"`
	Amenities     string          `json:"amenities"`
	Available     bool            `json:"available"`
}

// BookingView joins a ledger entry with the room it holds.
type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomCategory  string          `json:"room_category,omitempty"`
	CategoryLabel string          `json:"category_label,omitempty"`
	Amenities     string          `json:"amenities,omitempty"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	GuestName     string          `json:"guest_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	Nights        int             `json:"nights"`
	Guests        int             `json:"guests"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type StatsView struct {
	TotalRooms     int             `json:"total_rooms"`
	AvailableRooms int             `json:"available_rooms"`
	BookedRooms    int             `json:"booked_rooms"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

func NewRoomView(r *room.Room) *RoomView {
	return &RoomView{
		Number:        r.Number(),
		Category:      r.Category().String(),
		CategoryLabel: r.Category().Label(),
		PricePerNight: r.PriceDecimal(),
		MaxCapacity:   r.MaxCapacity(),
		Amenities:     r.Amenities(),
		Available:     r.IsAvailable(),
	}
}

// NewBookingView builds the view; r may be nil when the room is no longer in the catalog.
func NewBookingView(b *booking.Booking, r *room.Room) *BookingView {
	v := &BookingView{
		ID:            b.ID(),
		RoomNumber:    b.RoomNumber(),
		GuestName:     b.Guest().Name(),
		Email:         b.Guest().Email(),
		Phone:         b.Guest().Phone(),
		CheckIn:       b.Period().CheckIn(),
		CheckOut:      b.Period().CheckOut(),
		Nights:        b.Nights(),
		Guests:        b.NumberOfGuests(),
		Status:        b.Status().String(),
		TotalAmount:   b.TotalAmount(),
		PaymentMethod: b.PaymentMethod().String(),
		CreatedAt:     b.CreatedAt(),
	}
	if r != nil {
		v.RoomCategory = r.Category().String()
		v.CategoryLabel = r.Category().Label()
		v.Amenities = r.Amenities()
		v.PricePerNight = r.PriceDecimal()
	}
	return v
}
