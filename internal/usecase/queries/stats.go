package queries

import (
	"context"

	"hotel-reservation/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type StatsQueries interface {
	Get(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewStatsQueries(uow shared.UnitOfWork) StatsQueries {
	return &statsQueriesImpl{uow: uow}
}

// Get recomputes the dashboard figures from the current catalog and ledger.
// Available rooms follow the coarse flag; revenue counts confirmed and completed bookings.
func (q *statsQueriesImpl) Get(ctx context.Context) (*StatsView, error) {
	stats := &StatsView{TotalRevenue: decimal.Zero}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		rooms := tx.Rooms()
		stats.TotalRooms = len(rooms)
		for _, r := range rooms {
			if r.IsAvailable() {
				stats.AvailableRooms++
			}
		}
		stats.BookedRooms = stats.TotalRooms - stats.AvailableRooms

		for _, b := range tx.Bookings() {
			stats.TotalRevenue = stats.TotalRevenue.Add(b.Revenue())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
