package filestore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/converter"
)

const (
	RoomsFile    = "rooms.json"
	BookingsFile = "bookings.json"
)

// Store keeps each collection as one JSON document under dir.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindIOFailure, "failed to create data directory", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Load returns empty collections when nothing has been saved yet.
func (s *Store) Load(_ context.Context) ([]*room.Room, []*booking.Booking, error) {
	roomsData, err := s.read(RoomsFile)
	if err != nil {
		return nil, nil, err
	}
	bookingsData, err := s.read(BookingsFile)
	if err != nil {
		return nil, nil, err
	}

	rooms := []*room.Room{}
	if roomsData != nil {
		rooms, err = converter.DecodeRooms(roomsData)
		if err != nil {
			return nil, nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to decode "+RoomsFile, err)
		}
	}

	bookings := []*booking.Booking{}
	if bookingsData != nil {
		bookings, err = converter.DecodeBookings(bookingsData)
		if err != nil {
			return nil, nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to decode "+BookingsFile, err)
		}
	}

	return rooms, bookings, nil
}

func (s *Store) SaveRooms(_ context.Context, rooms []*room.Room) error {
	data, err := converter.EncodeRooms(rooms)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode rooms", err)
	}
	return s.write(RoomsFile, data)
}

func (s *Store) SaveBookings(_ context.Context, bookings []*booking.Booking) error {
	data, err := converter.EncodeBookings(bookings)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode bookings", err)
	}
	return s.write(BookingsFile, data)
}

func (s *Store) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to read "+name, err)
	}
	return data, nil
}

// write replaces name atomically so a crash mid-write never leaves a torn document.
func (s *Store) write(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to create temp file for "+name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to write "+name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to sync "+name, err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to close "+name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to replace "+name, err)
	}
	return nil
}
