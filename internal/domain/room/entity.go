package room

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomNumber     = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong   = errors.New("room number is too long")
	ErrInvalidCategory     = errors.New("invalid room category")
	ErrNonPositivePrice    = errors.New("price per night must be positive")
	ErrNonPositiveCapacity = errors.New("max capacity must be positive")
)

// Room is a catalog entry. The available flag is a coarse dashboard status;
// date-range availability is decided from the booking ledger.
type Room struct {
	number      Number
	category    Category
	price       Price
	maxCapacity int
	amenities   string
	available   bool
}

func NewRoom(number string, category Category, pricePerNight decimal.Decimal, maxCapacity int) (*Room, error) {
	n, err := NewNumber(number)
	if err != nil {
		return nil, err
	}

	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	price, err := NewPrice(pricePerNight)
	if err != nil {
		return nil, err
	}

	if maxCapacity < 1 {
		return nil, ErrNonPositiveCapacity
	}

	return &Room{
		number:      n,
		category:    category,
		price:       price,
		maxCapacity: maxCapacity,
		amenities:   strings.Join(category.Amenities(), ", "),
		available:   true,
	}, nil
}

// Reconstruct rebuilds a room from persisted state. Amenities are derived
// from the category again so stored text never drifts from the catalog rules.
func Reconstruct(number string, category Category, pricePerNight decimal.Decimal, maxCapacity int, available bool) (*Room, error) {
	r, err := NewRoom(number, category, pricePerNight, maxCapacity)
	if err != nil {
		return nil, err
	}
	r.available = available
	return r, nil
}

func (r *Room) CanHost(guests int) bool {
	return guests >= 1 && guests <= r.maxCapacity
}

func (r *Room) MarkAvailable() { r.available = true }
func (r *Room) MarkOccupied()  { r.available = false }

func (r *Room) Number() string                { return r.number.String() }
func (r *Room) Category() Category            { return r.category }
func (r *Room) PricePerNight() Price          { return r.price }
func (r *Room) MaxCapacity() int              { return r.maxCapacity }
func (r *Room) Amenities() string             { return r.amenities }
func (r *Room) IsAvailable() bool             { return r.available }
func (r *Room) PriceDecimal() decimal.Decimal { return r.price.Decimal() }
