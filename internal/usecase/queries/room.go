package queries

import (
	"context"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

// SearchCriteria filters the catalog. A nil Category matches every category.
type SearchCriteria struct {
	Category  *room.Category
	MinGuests int
	Period    booking.StayPeriod
}

type RoomQueries interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	Get(ctx context.Context, number string) (*RoomView, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) Search(ctx context.Context, criteria SearchCriteria) ([]*RoomView, error) {
	result := []*RoomView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		ledger := tx.Bookings()
		for _, r := range tx.Rooms() {
			if !matches(r, criteria) {
				continue
			}
			if !booking.RoomIsFree(ledger, r.Number(), criteria.Period) {
				continue
			}
			result = append(result, NewRoomView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func matches(r *room.Room, criteria SearchCriteria) bool {
	if criteria.Category != nil && r.Category() != *criteria.Category {
		return false
	}
	return r.MaxCapacity() >= criteria.MinGuests
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	var result []*RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		rooms := tx.Rooms()
		result = make([]*RoomView, 0, len(rooms))
		for _, r := range rooms {
			result = append(result, NewRoomView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (q *roomQueriesImpl) Get(ctx context.Context, number string) (*RoomView, error) {
	var view *RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		r, ok := tx.RoomByNumber(number)
		if !ok {
			return errs.ErrRoomNotFound
		}
		view = NewRoomView(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
