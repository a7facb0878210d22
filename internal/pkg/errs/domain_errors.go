package errs

// Sentinel errors shared by the engine and the presentation layer
var (
	// Room errors
	ErrRoomNotFound  = New("room not found")
	ErrDuplicateRoom = New("room number already exists")

	// Booking errors
	ErrBookingNotFound    = New("booking not found")
	ErrBookingUnavailable = New("room is not available for the requested dates")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrPersistenceFailed = New("persistence operation failed")
)
