//go:build unit || e2e

package builder

import (
	"strings"
	"testing"

	"hotel-reservation/internal/domain/room"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/infra/converter"
	"hotel-reservation/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type RoomBuilder struct {
	Number        string
	Category      room.Category
	PricePerNight decimal.Decimal
	MaxCapacity   int
	Available     bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:        "101",
		Category:      room.CategoryStandard,
		PricePerNight: decimal.NewFromInt(100),
		MaxCapacity:   2,
		Available:     true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.Reconstruct(r.Number, r.Category, r.PricePerNight, r.MaxCapacity, r.Available)
}

func (r *RoomBuilder) MustBuildDomain(t *testing.T) *room.Room {
	t.Helper()
	rm, err := r.BuildDomain()
	require.NoError(t, err)
	return rm
}

func (r *RoomBuilder) BuildRecord() converter.RoomRecord {
	return converter.RoomRecord{
		Number:        r.Number,
		Category:      r.Category.String(),
		PricePerNight: r.PricePerNight.String(),
		MaxCapacity:   r.MaxCapacity,
		Available:     r.Available,
	}
}

func (r *RoomBuilder) BuildAddRequestDTO() reqdto.AddRoomRequest {
	return reqdto.AddRoomRequest{
		Number:        r.Number,
		Category:      r.Category.String(),
		PricePerNight: r.PricePerNight,
		MaxCapacity:   r.MaxCapacity,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		Number:        r.Number,
		Category:      r.Category.String(),
		CategoryLabel: r.Category.Label(),
		PricePerNight: r.PricePerNight,
		MaxCapacity:   r.MaxCapacity,
		Amenities:     strings.Join(r.Category.Amenities(), ", "),
		Available:     r.Available,
	}
}
