package booking

// RoomIsFree applies the overlap rule over the whole ledger: a room is free
// for period unless some non-cancelled booking on it overlaps.
func RoomIsFree(ledger []*Booking, roomNumber string, period StayPeriod) bool {
	for _, b := range ledger {
		if b.Blocks(roomNumber, period) {
			return false
		}
	}
	return true
}

// HasActiveBooking is true while any pending or confirmed booking holds the room.
func HasActiveBooking(ledger []*Booking, roomNumber string) bool {
	for _, b := range ledger {
		if b.roomNumber == roomNumber && b.status.IsActive() {
			return true
		}
	}
	return false
}
