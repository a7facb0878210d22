package memstore

import (
	"context"
	"sync"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra/converter"
)

// Store keeps the last saved snapshot of each collection in process memory.
// Snapshots are encoded on save so later mutations of the live entities never leak in.
type Store struct {
	mu       sync.Mutex
	rooms    []byte
	bookings []byte
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]*room.Room, []*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := []*room.Room{}
	if s.rooms != nil {
		var err error
		if rooms, err = converter.DecodeRooms(s.rooms); err != nil {
			return nil, nil, err
		}
	}
	bookings := []*booking.Booking{}
	if s.bookings != nil {
		var err error
		if bookings, err = converter.DecodeBookings(s.bookings); err != nil {
			return nil, nil, err
		}
	}
	return rooms, bookings, nil
}

func (s *Store) SaveRooms(_ context.Context, rooms []*room.Room) error {
	data, err := converter.EncodeRooms(rooms)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.rooms = data
	s.mu.Unlock()
	return nil
}

func (s *Store) SaveBookings(_ context.Context, bookings []*booking.Booking) error {
	data, err := converter.EncodeBookings(bookings)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bookings = data
	s.mu.Unlock()
	return nil
}
