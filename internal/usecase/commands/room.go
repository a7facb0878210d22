package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type AddRoomParams struct {
	Number        string
	Category      room.Category
	PricePerNight decimal.Decimal
	MaxCapacity   int
}

type RoomCommands interface {
	Add(ctx context.Context, params AddRoomParams) (*queries.RoomView, error)
	ResetData(ctx context.Context) error
	SeedIfEmpty(ctx context.Context) (int, error)
}

type roomCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewRoomCommands(uow shared.UnitOfWork, logger *slog.Logger) RoomCommands {
	return &roomCommandsImpl{
		uow:    uow,
		logger: logger,
	}
}

func (c *roomCommandsImpl) Add(ctx context.Context, params AddRoomParams) (*queries.RoomView, error) {
	r, err := room.NewRoom(params.Number, params.Category, params.PricePerNight, params.MaxCapacity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, exists := tx.RoomByNumber(r.Number()); exists {
			return errs.ErrDuplicateRoom
		}
		tx.AddRoom(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("room added", "room", r.Number(), "category", r.Category().String())
	return queries.NewRoomView(r), nil
}

// ResetData empties the ledger and frees every room. Callers confirm intent beforehand.
func (c *roomCommandsImpl) ResetData(ctx context.Context) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tx.ClearBookings()
		for _, r := range tx.Rooms() {
			r.MarkAvailable()
		}
		tx.TouchRooms()
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.Warn("hotel data reset")
	return nil
}

// SeedIfEmpty installs the default catalog when no rooms exist and reports how many were added.
func (c *roomCommandsImpl) SeedIfEmpty(ctx context.Context) (int, error) {
	seeded := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if len(tx.Rooms()) > 0 {
			return nil
		}
		for _, r := range room.DefaultCatalog() {
			tx.AddRoom(r)
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if seeded > 0 {
		c.logger.Info("default catalog seeded", "rooms", seeded)
	}
	return seeded, nil
}
