package request

import (
	"errors"
	"strings"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/patch"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// ErrReservedRoomNumber rejects numbers that would be shadowed by a static route under /api/rooms.
var ErrReservedRoomNumber = errors.New("room number is reserved")

var reservedRoomNumbers = map[string]struct{}{
	"search": {},
}

// AddRoomRequest numbers must be addressable as a single path segment.
type AddRoomRequest struct {
	Number        string          `json:"number" binding:"required,max=16,excludesall=/?#%"`
	Category      string          `json:"category" binding:"required"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxCapacity   int             `json:"max_capacity" binding:"required,min=1,max=10"`
}

func (r AddRoomRequest) ToParams() (commands.AddRoomParams, error) {
	number := strings.TrimSpace(r.Number)
	if _, reserved := reservedRoomNumbers[number]; reserved {
		return commands.AddRoomParams{}, ErrReservedRoomNumber
	}
	category, err := room.ParseCategory(r.Category)
	if err != nil {
		return commands.AddRoomParams{}, err
	}
	return commands.AddRoomParams{
		Number:        number,
		Category:      category,
		PricePerNight: r.PricePerNight,
		MaxCapacity:   r.MaxCapacity,
	}, nil
}

// SearchRoomsQuery is bound from the query string. An empty category or "any" matches all rooms.
type SearchRoomsQuery struct {
	Category string `form:"category"`
	Guests   *int   `form:"guests" binding:"omitempty,min=1,max=10"`
	CheckIn  string `form:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut string `form:"checkOut" binding:"required,datetime=2006-01-02"`
}

func (q SearchRoomsQuery) ToCriteria(now time.Time) (queries.SearchCriteria, error) {
	period, err := parseFuturePeriod(q.CheckIn, q.CheckOut, now)
	if err != nil {
		return queries.SearchCriteria{}, err
	}

	criteria := queries.SearchCriteria{
		MinGuests: patch.Coalesce(q.Guests, 1),
		Period:    period,
	}

	switch c := strings.TrimSpace(q.Category); {
	case c == "", strings.EqualFold(c, "any"):
	default:
		category, err := room.ParseCategory(c)
		if err != nil {
			return queries.SearchCriteria{}, err
		}
		criteria.Category = &category
	}
	return criteria, nil
}

func parseFuturePeriod(checkIn, checkOut string, now time.Time) (booking.StayPeriod, error) {
	period, err := booking.ParseStayPeriod(checkIn, checkOut)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	if period.StartsBefore(now) {
		return booking.StayPeriod{}, booking.ErrCheckInInPast
	}
	return period, nil
}
