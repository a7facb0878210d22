package room

import "github.com/shopspring/decimal"

type seed struct {
	number   string
	category Category
	price    int64
	capacity int
}

var defaultRooms = []seed{
	{"101", CategoryStandard, 100, 2},
	{"102", CategoryStandard, 100, 2},
	{"103", CategoryStandard, 110, 3},
	{"201", CategoryDeluxe, 200, 2},
	{"202", CategoryDeluxe, 200, 2},
	{"203", CategoryDeluxe, 220, 4},
	{"301", CategorySuite, 350, 4},
	{"302", CategorySuite, 400, 6},
}

// DefaultCatalog returns the rooms a brand-new hotel starts with.
func DefaultCatalog() []*Room {
	rooms := make([]*Room, 0, len(defaultRooms))
	for _, s := range defaultRooms {
		r, err := NewRoom(s.number, s.category, decimal.NewFromInt(s.price), s.capacity)
		if err != nil {
			panic("invalid default room " + s.number + ": " + err.Error())
		}
		rooms = append(rooms, r)
	}
	return rooms
}
