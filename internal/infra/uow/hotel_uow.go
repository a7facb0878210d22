package uow

import (
	"context"
	"log/slog"
	"sync"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var errLoadFailed = errs.New("failed to load hotel state")

// HotelUoW owns the in-memory catalog and ledger. In-memory state is
// authoritative; flushing to the gateway is best-effort.
type HotelUoW struct {
	mu       sync.Mutex
	gateway  shared.Gateway
	logger   *slog.Logger
	rooms    []*room.Room
	bookings []*booking.Booking
}

func NewHotelUoW(gateway shared.Gateway, logger *slog.Logger) *HotelUoW {
	return &HotelUoW{
		gateway: gateway,
		logger:  logger,
	}
}

// Load replaces the in-memory state with whatever the gateway holds.
func (u *HotelUoW) Load(ctx context.Context) error {
	rooms, bookings, err := u.gateway.Load(ctx)
	if err != nil {
		return errs.Mark(err, errLoadFailed)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.rooms = rooms
	u.bookings = bookings

	u.logger.Info("hotel state loaded", "rooms", len(rooms), "bookings", len(bookings))
	return nil
}

func (u *HotelUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := &memTx{uow: u}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	u.flush(ctx, tx)
	return nil
}

func (u *HotelUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return fn(ctx, &memTx{uow: u})
}

// Failed writes are logged and swallowed: no retry, no rollback.
func (u *HotelUoW) flush(ctx context.Context, tx *memTx) {
	if tx.roomsDirty {
		if err := u.gateway.SaveRooms(ctx, u.rooms); err != nil {
			u.logPersistenceFailure("rooms", err)
		}
	}
	if tx.bookingsDirty {
		if err := u.gateway.SaveBookings(ctx, u.bookings); err != nil {
			u.logPersistenceFailure("bookings", err)
		}
	}
}

func (u *HotelUoW) logPersistenceFailure(collection string, err error) {
	err = errs.Mark(err, errs.ErrPersistenceFailed)
	u.logger.Error("failed to persist collection",
		"collection", collection,
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 6))
}

type memTx struct {
	uow           *HotelUoW
	roomsDirty    bool
	bookingsDirty bool
}

func (t *memTx) Rooms() []*room.Room {
	out := make([]*room.Room, len(t.uow.rooms))
	copy(out, t.uow.rooms)
	return out
}

func (t *memTx) Bookings() []*booking.Booking {
	out := make([]*booking.Booking, len(t.uow.bookings))
	copy(out, t.uow.bookings)
	return out
}

func (t *memTx) RoomByNumber(number string) (*room.Room, bool) {
	for _, r := range t.uow.rooms {
		if r.Number() == number {
			return r, true
		}
	}
	return nil, false
}

func (t *memTx) BookingByID(id uuid.UUID) (*booking.Booking, bool) {
	for _, b := range t.uow.bookings {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

func (t *memTx) AddRoom(r *room.Room) {
	t.uow.rooms = append(t.uow.rooms, r)
	t.roomsDirty = true
}

func (t *memTx) AddBooking(b *booking.Booking) {
	t.uow.bookings = append(t.uow.bookings, b)
	t.bookingsDirty = true
}

func (t *memTx) ClearBookings() {
	t.uow.bookings = nil
	t.bookingsDirty = true
}

func (t *memTx) TouchRooms()    { t.roomsDirty = true }
func (t *memTx) TouchBookings() { t.bookingsDirty = true }
