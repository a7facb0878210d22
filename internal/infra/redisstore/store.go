package redisstore

import (
	"context"
	"errors"
	"log/slog"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/converter"

	"github.com/redis/go-redis/v9"
)

// Store keeps each collection as a JSON string under <prefix>:rooms and <prefix>:bookings.
type Store struct {
	client redis.Cmdable
	prefix string
	logger *slog.Logger
}

func NewStore(client redis.Cmdable, prefix string, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (s *Store) RoomsKey() string    { return s.prefix + ":rooms" }
func (s *Store) BookingsKey() string { return s.prefix + ":bookings" }

func (s *Store) Load(ctx context.Context) ([]*room.Room, []*booking.Booking, error) {
	roomsData, err := s.get(ctx, s.RoomsKey())
	if err != nil {
		return nil, nil, err
	}
	bookingsData, err := s.get(ctx, s.BookingsKey())
	if err != nil {
		return nil, nil, err
	}

	rooms := []*room.Room{}
	if roomsData != nil {
		if rooms, err = converter.DecodeRooms(roomsData); err != nil {
			return nil, nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to decode "+s.RoomsKey(), err)
		}
	}
	bookings := []*booking.Booking{}
	if bookingsData != nil {
		if bookings, err = converter.DecodeBookings(bookingsData); err != nil {
			return nil, nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to decode "+s.BookingsKey(), err)
		}
	}
	return rooms, bookings, nil
}

func (s *Store) SaveRooms(ctx context.Context, rooms []*room.Room) error {
	data, err := converter.EncodeRooms(rooms)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode rooms", err)
	}
	return s.set(ctx, s.RoomsKey(), data)
}

func (s *Store) SaveBookings(ctx context.Context, bookings []*booking.Booking) error {
	data, err := converter.EncodeBookings(bookings)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode bookings", err)
	}
	return s.set(ctx, s.BookingsKey(), data)
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to get "+key, err)
	}
	return data, nil
}

func (s *Store) set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to set "+key, err)
	}
	return nil
}
