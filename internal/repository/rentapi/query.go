package rentapi

import (
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// SearchQuery builds the /search-posts parameters from a filter state. It is
// a pure function: a parameter is present iff its filter is away from the
// unset sentinel, except the price and area bounds which always carry their
// defaults. Amenity selection never reaches the wire; it is applied
// client-side after enrichment.
func SearchQuery(f domain.FilterState, limit, offset int) url.Values {
	q := url.Values{}
	if f.Province != "" {
		q.Set("province", f.Province)
	}
	if f.District != "" {
		q.Set("district", f.District)
	}
	if f.Type != "" && f.Type != domain.PropertyTypeAny {
		q.Set("type", f.Type)
	}
	if f.RoomNum > 0 {
		q.Set("room_num", strconv.Itoa(f.RoomNum))
	}
	q.Set("min_price", strconv.Itoa(f.PriceMin))
	q.Set("max_price", strconv.Itoa(f.PriceMax))
	q.Set("area_min", strconv.Itoa(f.AreaMin))
	q.Set("area_max", strconv.Itoa(f.AreaMax))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return q
}
