package components

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			uow.NewHotelUoW,
			fx.As(fx.Self()),
			fx.As(new(shared.UnitOfWork)),
		),
	),
	fx.Invoke(registerHotelLoader),
)

// registerHotelLoader restores persisted state before the server starts
// accepting requests.
func registerHotelLoader(lc fx.Lifecycle, cfg config.Config, hotel *uow.HotelUoW, rooms commands.RoomCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return restoreHotel(ctx, cfg.Hotel, hotel, rooms, logger)
		},
	})
}

// restoreHotel aborts on unreadable state unless StartEmptyOnLoadFailure is set.
func restoreHotel(ctx context.Context, cfg config.HotelConfig, hotel *uow.HotelUoW, rooms commands.RoomCommands, logger *slog.Logger) error {
	if err := hotel.Load(ctx); err != nil {
		if !cfg.StartEmptyOnLoadFailure {
			logger.Error("persisted hotel state is unreadable; fix or remove it, or set HOTEL_START_EMPTY_ON_LOAD_FAILURE=true",
				"error", err)
			return err
		}
		logger.Warn("persisted hotel state is unreadable; starting empty, the next save replaces it",
			"error", err)
	}

	if !cfg.SeedOnEmpty {
		return nil
	}
	seeded, err := rooms.SeedIfEmpty(ctx)
	if err != nil {
		return err
	}
	if seeded > 0 {
		logger.Info("empty catalog replaced with defaults", "rooms", seeded)
	}
	return nil
}
