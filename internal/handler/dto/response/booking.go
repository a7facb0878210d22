package response

import (
	"hotel-reservation/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID            string `json:"id"`
	RoomNumber    string `json:"room_number"`
	RoomCategory  string `json:"room_category,omitempty"`
	CategoryLabel string `json:"category_label,omitempty"`
	Amenities     string `json:"amenities,omitempty"`
	PricePerNight string `json:"price_per_night"`
	GuestName     string `json:"guest_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Nights        int    `json:"nights"`
	Guests        int    `json:"guests"`
	Status        string `json:"status"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID.String(),
		RoomNumber:    v.RoomNumber,
		RoomCategory:  v.RoomCategory,
		CategoryLabel: v.CategoryLabel,
		Amenities:     v.Amenities,
		PricePerNight: v.PricePerNight.StringFixed(2),
		GuestName:     v.GuestName,
		Email:         v.Email,
		Phone:         v.Phone,
		CheckIn:       v.CheckIn.Format(dateLayout),
		CheckOut:      v.CheckOut.Format(dateLayout),
		Nights:        v.Nights,
		Guests:        v.Guests,
		Status:        v.Status,
		TotalAmount:   v.TotalAmount.StringFixed(2),
		PaymentMethod: v.PaymentMethod,
		CreatedAt:     v.CreatedAt.Unix(),
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}
