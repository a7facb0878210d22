package api

import (
	"net/http"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithEngineError maps engine failures onto HTTP statuses.
func abortWithEngineError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrBookingUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available for the selected dates", nil)
	case errs.Is(err, errs.ErrDuplicateRoom):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room number already exists", nil)
	case errs.Is(err, booking.ErrAlreadyCancelled),
		errs.Is(err, booking.ErrBookingCancelled),
		errs.Is(err, booking.ErrBookingCompleted):
		httperr.AbortWithError(c, http.StatusConflict, err, rootMessage(err), nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, rootMessage(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, rootMessage(err), nil)
}

// rootMessage strips wrapping so clients see the domain rule that failed.
func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
