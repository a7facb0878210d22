package room

import "strings"

type Category string

const (
	CategoryStandard Category = "standard"
	CategoryDeluxe   Category = "deluxe"
	CategorySuite    Category = "suite"
)

var categoryOrder = []Category{CategoryStandard, CategoryDeluxe, CategorySuite}

var categoryLabels = map[Category]string{
	CategoryStandard: "Standard Room",
	CategoryDeluxe:   "Deluxe Room",
	CategorySuite:    "Suite",
}

var categoryDescriptions = map[Category]string{
	CategoryStandard: "Basic amenities",
	CategoryDeluxe:   "Premium amenities, City view",
	CategorySuite:    "Luxury amenities, Separate living area, Premium view",
}

var categoryAmenities = map[Category][]string{
	CategoryStandard: {"WiFi", "TV", "AC"},
	CategoryDeluxe:   {"WiFi", "Smart TV", "AC", "Mini-bar", "City View"},
	CategorySuite:    {"WiFi", "Smart TV", "AC", "Mini-bar", "Jacuzzi", "Premium View", "Living Area"},
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategoryDeluxe, CategorySuite:
		return true
	default:
		return false
	}
}

func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) Description() string {
	return categoryDescriptions[c]
}

// Amenities returns a fresh copy so callers cannot alter the fixed list.
func (c Category) Amenities() []string {
	src := categoryAmenities[c]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
