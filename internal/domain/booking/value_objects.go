package booking

import (
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// StayPeriod is the half-open date range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := normalizeDate(checkIn)
	out := normalizeDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ParseStayPeriod reads both ends in YYYY-MM-DD form.
func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.Parse(dateLayout, strings.TrimSpace(checkIn))
	if err != nil {
		return StayPeriod{}, ErrInvalidDate
	}
	out, err := time.Parse(dateLayout, strings.TrimSpace(checkOut))
	if err != nil {
		return StayPeriod{}, ErrInvalidDate
	}
	return NewStayPeriod(in, out)
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Nights counts calendar days. Both ends sit on UTC midnight, so Unix seconds
// divide evenly and ranges past the time.Duration limit stay exact.
func (p StayPeriod) Nights() int {
	return int((p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay)
}

// Overlaps is false only when one range ends on or before the other begins.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) StartsBefore(t time.Time) bool {
	return p.checkIn.Before(normalizeDate(t))
}

func (p StayPeriod) String() string {
	return "[" + p.checkIn.Format(dateLayout) + "," + p.checkOut.Format(dateLayout) + ")"
}

func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Guest{}, ErrEmptyGuestName
	}
	return Guest{
		name:  n,
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}, nil
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }
