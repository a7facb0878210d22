package booking

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	// StatusCompleted is reserved; no engine operation transitions to it yet.
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// HoldsRoom reports whether a booking in this status still blocks its dates.
func (s Status) HoldsRoom() bool {
	return s.IsValid() && s != StatusCancelled
}

// IsActive is true for bookings that have not yet ended either way.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) CountsAsRevenue() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPayPal     PaymentMethod = "paypal"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPayPal:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod defaults to a credit card when the value is blank.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return PaymentCreditCard, nil
	}
	m := PaymentMethod(t)
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}
