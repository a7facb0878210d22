package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// RoomRecord is the persisted shape of a catalog entry.
type RoomRecord struct {
	Number        string `json:"number"`
	Category      string `json:"category"`
	PricePerNight string `json:"price_per_night"`
	MaxCapacity   int    `json:"max_capacity"`
	Available     bool   `json:"available"`
}

// BookingRecord is the persisted shape of a ledger entry.
type BookingRecord struct {
	ID            string    `json:"id"`
	RoomNumber    string    `json:"room_number"`
	GuestName     string    `json:"guest_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func RoomToRecord(r *room.Room) RoomRecord {
	return RoomRecord{
		Number:        r.Number(),
		Category:      r.Category().String(),
		PricePerNight: r.PriceDecimal().String(),
		MaxCapacity:   r.MaxCapacity(),
		Available:     r.IsAvailable(),
	}
}

func RoomFromRecord(rec RoomRecord) (*room.Room, error) {
	category, err := room.ParseCategory(rec.Category)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", rec.Number, err)
	}
	price, err := decimal.NewFromString(rec.PricePerNight)
	if err != nil {
		return nil, fmt.Errorf("room %q: invalid price %q: %w", rec.Number, rec.PricePerNight, err)
	}
	r, err := room.Reconstruct(rec.Number, category, price, rec.MaxCapacity, rec.Available)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", rec.Number, err)
	}
	return r, nil
}

func BookingToRecord(b *booking.Booking) BookingRecord {
	return BookingRecord{
		ID:            b.ID().String(),
		RoomNumber:    b.RoomNumber(),
		GuestName:     b.Guest().Name(),
		Email:         b.Guest().Email(),
		Phone:         b.Guest().Phone(),
		CheckIn:       b.Period().CheckIn().Format(dateLayout),
		CheckOut:      b.Period().CheckOut().Format(dateLayout),
		Guests:        b.NumberOfGuests(),
		Status:        b.Status().String(),
		TotalAmount:   b.TotalAmount().String(),
		PaymentMethod: b.PaymentMethod().String(),
		CreatedAt:     b.CreatedAt().UTC(),
	}
}

func BookingFromRecord(rec BookingRecord) (*booking.Booking, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("booking %q: invalid id: %w", rec.ID, err)
	}
	guest, err := booking.NewGuest(rec.GuestName, rec.Email, rec.Phone)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", id, err)
	}
	period, err := booking.ParseStayPeriod(rec.CheckIn, rec.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", id, err)
	}
	status, err := booking.NewStatus(rec.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", id, err)
	}
	total, err := decimal.NewFromString(rec.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("booking %s: invalid total %q: %w", id, rec.TotalAmount, err)
	}

	// Pending bookings carry no method yet.
	method := booking.PaymentMethod(rec.PaymentMethod)
	if rec.PaymentMethod != "" && !method.IsValid() {
		return nil, fmt.Errorf("booking %s: %w", id, booking.ErrInvalidPaymentMethod)
	}

	return booking.Reconstruct(id, rec.RoomNumber, guest, period, rec.Guests, status, total, method, rec.CreatedAt.UTC()), nil
}

// EncodeRooms renders the catalog as a JSON array; an empty catalog becomes "[]".
func EncodeRooms(rooms []*room.Room) ([]byte, error) {
	records := make([]RoomRecord, 0, len(rooms))
	for _, r := range rooms {
		records = append(records, RoomToRecord(r))
	}
	return json.Marshal(records)
}

func DecodeRooms(data []byte) ([]*room.Room, error) {
	var records []RoomRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	rooms := make([]*room.Room, 0, len(records))
	for _, rec := range records {
		r, err := RoomFromRecord(rec)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func EncodeBookings(bookings []*booking.Booking) ([]byte, error) {
	records := make([]BookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, BookingToRecord(b))
	}
	return json.Marshal(records)
}

func DecodeBookings(data []byte) ([]*booking.Booking, error) {
	var records []BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	bookings := make([]*booking.Booking, 0, len(records))
	for _, rec := range records {
		b, err := BookingFromRecord(rec)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
