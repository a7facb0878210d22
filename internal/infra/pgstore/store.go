package pgstore

import (
	"context"
	"errors"
	"log/slog"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/converter"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	RoomsSnapshot    = "rooms"
	BookingsSnapshot = "bookings"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS hotel_snapshots (
	name       text PRIMARY KEY,
	payload    jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

const selectSnapshotSQL = `SELECT payload FROM hotel_snapshots WHERE name = $1`

const upsertSnapshotSQL = `
INSERT INTO hotel_snapshots (name, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store keeps each collection as one jsonb row of hotel_snapshots.
type Store struct {
	db     DBTX
	logger *slog.Logger
}

func NewStore(db DBTX, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableSQL); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create hotel_snapshots", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]*room.Room, []*booking.Booking, error) {
	roomsData, err := s.snapshot(ctx, RoomsSnapshot)
	if err != nil {
		return nil, nil, err
	}
	bookingsData, err := s.snapshot(ctx, BookingsSnapshot)
	if err != nil {
		return nil, nil, err
	}

	rooms := []*room.Room{}
	if roomsData != nil {
		if rooms, err = converter.DecodeRooms(roomsData); err != nil {
			return nil, nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to decode rooms snapshot", err)
		}
	}
	bookings := []*booking.Booking{}
	if bookingsData != nil {
		if bookings, err = converter.DecodeBookings(bookingsData); err != nil {
			return nil, nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to decode bookings snapshot", err)
		}
	}
	return rooms, bookings, nil
}

func (s *Store) SaveRooms(ctx context.Context, rooms []*room.Room) error {
	data, err := converter.EncodeRooms(rooms)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode rooms", err)
	}
	return s.upsert(ctx, RoomsSnapshot, data)
}

func (s *Store) SaveBookings(ctx context.Context, bookings []*booking.Booking) error {
	data, err := converter.EncodeBookings(bookings)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode bookings", err)
	}
	return s.upsert(ctx, BookingsSnapshot, data)
}

func (s *Store) snapshot(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, selectSnapshotSQL, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read "+name+" snapshot", err)
	}
	return payload, nil
}

func (s *Store) upsert(ctx context.Context, name string, payload []byte) error {
	if _, err := s.db.Exec(ctx, upsertSnapshotSQL, name, payload); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to write "+name+" snapshot", err)
	}
	return nil
}
