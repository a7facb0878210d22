package response

import (
	"hotel-reservation/internal/usecase/queries"
)

type RoomResponse struct {
	Number        string `json:"number"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	PricePerNight string `json:"price_per_night"`
	MaxCapacity   int    `json:"max_capacity"`
	Amenities     string `json:"amenities"`
	Available     bool   `json:"available"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		Number:        v.Number,
		Category:      v.Category,
		CategoryLabel: v.CategoryLabel,
		PricePerNight: v.PricePerNight.StringFixed(2),
		MaxCapacity:   v.MaxCapacity,
		Amenities:     v.Amenities,
		Available:     v.Available,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomView(v)
	}
	return res
}

type StatsResponse struct {
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"`
	BookedRooms    int    `json:"booked_rooms"`
	TotalRevenue   string `json:"total_revenue"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		TotalRooms:     v.TotalRooms,
		AvailableRooms: v.AvailableRooms,
		BookedRooms:    v.BookedRooms,
		TotalRevenue:   v.TotalRevenue.StringFixed(2),
	}
}
