package queries

import (
	"context"

	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	List(ctx context.Context) ([]*BookingView, error)
	Get(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

// List returns the ledger in insertion order.
func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	var result []*BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		bookings := tx.Bookings()
		result = make([]*BookingView, 0, len(bookings))
		for _, b := range bookings {
			r, _ := tx.RoomByNumber(b.RoomNumber())
			result = append(result, NewBookingView(b, r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		b, ok := tx.BookingByID(id)
		if !ok {
			return errs.ErrBookingNotFound
		}
		r, _ := tx.RoomByNumber(b.RoomNumber())
		view = NewBookingView(b, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
