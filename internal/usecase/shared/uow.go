package shared

import (
	"context"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serialised access for write operations; dirty collections are flushed on success
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: serialised access for consistent reads, never flushes
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type ReadTx interface {
	Rooms() []*room.Room
	Bookings() []*booking.Booking
	RoomByNumber(number string) (*room.Room, bool)
	BookingByID(id uuid.UUID) (*booking.Booking, bool)
}

type Tx interface {
	ReadTx
	AddRoom(r *room.Room)
	AddBooking(b *booking.Booking)
	ClearBookings()
	// TouchRooms and TouchBookings mark a collection dirty after an in-place change.
	TouchRooms()
	TouchBookings()
}

// Gateway is the durable store behind the catalog and the ledger.
// Load must return empty collections, not an error, when nothing was saved yet.
type Gateway interface {
	Load(ctx context.Context) ([]*room.Room, []*booking.Booking, error)
	SaveRooms(ctx context.Context, rooms []*room.Room) error
	SaveBookings(ctx context.Context, bookings []*booking.Booking) error
}
