package domain

import (
	"errors"
	"fmt"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortAreaDesc  SortKey = "area"
)

func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortAreaDesc:
		return SortKey(raw), nil
	case "":
		return SortNewest, nil
	}
	return "", fmt.Errorf("unknown sort key %q", raw)
}

var (
	ErrInvalidPriceRange = errors.New("price range must satisfy min <= max")
	ErrInvalidAreaRange  = errors.New("area range must satisfy min <= max")
	ErrUnknownType       = errors.New("unknown property type")
	ErrUnknownAmenity    = errors.New("unknown amenity key")
)

// FilterState is the full set of user-chosen search constraints. The unset
// sentinels are "" for text filters, PropertyTypeAny for the type selector
// and 0 for room count; price and area bounds always carry real values.
type FilterState struct {
	Province  string
	District  string
	Type      string
	PriceMin  int
	PriceMax  int
	AreaMin   int
	AreaMax   int
	RoomNum   int
	Amenities []string
}

// DefaultFilter returns the filter state every search page starts from.
func DefaultFilter() FilterState {
	return FilterState{
		Type:     PropertyTypeAny,
		PriceMin: 1_000_000,
		PriceMax: 5_000_000,
		AreaMin:  15,
		AreaMax:  50,
	}
}

// Validate enforces the range invariants the original UI only guaranteed by
// slider construction.
func (f FilterState) Validate() error {
	if f.PriceMin < 0 || f.PriceMin > f.PriceMax {
		return ErrInvalidPriceRange
	}
	if f.AreaMin < 0 || f.AreaMin > f.AreaMax {
		return ErrInvalidAreaRange
	}
	if f.Type != "" && !KnownPropertyType(f.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownType, f.Type)
	}
	for _, key := range f.Amenities {
		if !KnownAmenity(key) {
			return fmt.Errorf("%w: %q", ErrUnknownAmenity, key)
		}
	}
	return nil
}
