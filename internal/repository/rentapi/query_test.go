package rentapi

import (
	"testing"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

func TestSearchQuery_DefaultFilterOmitsUnsetSentinels(t *testing.T) {
	q := SearchQuery(domain.DefaultFilter(), 12, 0)

	for _, absent := range []string{"province", "district", "type", "room_num"} {
		if q.Has(absent) {
			t.Fatalf("expected %q absent for the unset sentinel, got %q", absent, q.Get(absent))
		}
	}
	for _, present := range []string{"min_price", "max_price", "area_min", "area_max", "limit", "offset"} {
		if !q.Has(present) {
			t.Fatalf("expected mandatory parameter %q", present)
		}
	}
	if q.Get("min_price") != "1000000" || q.Get("max_price") != "5000000" {
		t.Fatalf("unexpected price bounds %q..%q", q.Get("min_price"), q.Get("max_price"))
	}
}

func TestSearchQuery_SetFiltersAppear(t *testing.T) {
	f := domain.DefaultFilter()
	f.Province = "Hồ Chí Minh"
	f.District = "Quận 1"
	f.Type = domain.PropertyTypeRoom
	f.RoomNum = 2

	q := SearchQuery(f, 12, 24)

	if q.Get("province") != "Hồ Chí Minh" || q.Get("district") != "Quận 1" {
		t.Fatalf("location filters missing: %v", q)
	}
	if q.Get("type") != domain.PropertyTypeRoom {
		t.Fatalf("expected type filter, got %q", q.Get("type"))
	}
	if q.Get("room_num") != "2" {
		t.Fatalf("expected room_num 2, got %q", q.Get("room_num"))
	}
	if q.Get("offset") != "24" {
		t.Fatalf("expected offset 24, got %q", q.Get("offset"))
	}
}

func TestSearchQuery_AmenitiesNeverReachTheWire(t *testing.T) {
	f := domain.DefaultFilter()
	f.Amenities = []string{domain.AmenityWifi, domain.AmenityFridge}

	q := SearchQuery(f, 12, 0)

	for key := range q {
		if key == "amenities" || key == domain.AmenityWifi || key == domain.AmenityFridge {
			t.Fatalf("amenity constraint leaked into the primary query: %q", key)
		}
	}
}

func TestSearchQuery_TypeAnyIsOmitted(t *testing.T) {
	f := domain.DefaultFilter()
	f.Type = domain.PropertyTypeAny

	if q := SearchQuery(f, 12, 0); q.Has("type") {
		t.Fatalf("expected the any-type sentinel omitted, got %q", q.Get("type"))
	}
}
