package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	RoomNumber string
	Guest      booking.Guest
	Period     booking.StayPeriod
	Guests     int
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, method booking.PaymentMethod) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	AbandonPayment(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clock,
		logger: logger,
	}
}

// Create holds the room for the period as a pending booking.
// Every check runs before the first mutation, so a failed call leaves the hotel untouched.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, ok := tx.RoomByNumber(params.RoomNumber)
		if !ok {
			return errs.ErrRoomNotFound
		}

		if !booking.RoomIsFree(tx.Bookings(), r.Number(), params.Period) {
			return errs.ErrBookingUnavailable
		}

		b, err := booking.New(r, params.Guest, params.Period, params.Guests, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		tx.AddBooking(b)
		r.MarkOccupied()
		tx.TouchRooms()

		view = queries.NewBookingView(b, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("booking created",
		"booking_id", view.ID,
		"room", view.RoomNumber,
		"period", params.Period.String(),
		"total", view.TotalAmount.StringFixed(2))
	return view, nil
}

func (c *bookingCommandsImpl) ConfirmPayment(ctx context.Context, id uuid.UUID, method booking.PaymentMethod) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, ok := tx.BookingByID(id)
		if !ok {
			return errs.ErrBookingNotFound
		}

		if err := b.Confirm(method); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		tx.TouchBookings()

		r, _ := tx.RoomByNumber(b.RoomNumber())
		view = queries.NewBookingView(b, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("payment confirmed", "booking_id", id, "method", method.String())
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := c.cancel(ctx, id); err != nil {
		return err
	}
	c.logger.Info("booking cancelled", "booking_id", id)
	return nil
}

// AbandonPayment releases a booking whose guest walked away from the payment step.
func (c *bookingCommandsImpl) AbandonPayment(ctx context.Context, id uuid.UUID) error {
	if err := c.cancel(ctx, id); err != nil {
		return err
	}
	c.logger.Info("payment abandoned", "booking_id", id)
	return nil
}

func (c *bookingCommandsImpl) cancel(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, ok := tx.BookingByID(id)
		if !ok {
			return errs.ErrBookingNotFound
		}

		if err := b.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		tx.TouchBookings()

		// The coarse flag goes back to true only once nothing else holds the room.
		r, ok := tx.RoomByNumber(b.RoomNumber())
		if ok && !booking.HasActiveBooking(tx.Bookings(), r.Number()) {
			r.MarkAvailable()
			tx.TouchRooms()
		}
		return nil
	})
}
