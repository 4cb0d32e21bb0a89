package domain

const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

const (
	PropertyTypeAny       = "all"
	PropertyTypeRoom      = "Phòng trọ"
	PropertyTypeApartment = "Căn hộ"
	PropertyTypeHouse     = "Nhà nguyên căn"
	PropertyTypeShared    = "Ở ghép"
)

func KnownPropertyType(t string) bool {
	switch t {
	case PropertyTypeAny, PropertyTypeRoom, PropertyTypeApartment, PropertyTypeHouse, PropertyTypeShared:
		return true
	}
	return false
}

// ListingSummary mirrors a single post as the upstream API returns it.
// Prices and fees are plain VND amounts, area is square meters.
type ListingSummary struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           int       `json:"price"`
	Area            int       `json:"area"`
	RoomNum         int       `json:"room_num"`
	Type            string    `json:"type"`
	Province        string    `json:"province"`
	District        string    `json:"district"`
	Rural           string    `json:"rural"`
	Street          string    `json:"street"`
	DetailedAddress string    `json:"detailed_address"`
	Deposit         string    `json:"deposit"`
	ElectricityFee  int       `json:"electricity_fee"`
	WaterFee        int       `json:"water_fee"`
	InternetFee     int       `json:"internet_fee"`
	VehicleFee      int       `json:"vehicle_fee"`
	FloorNum        *string   `json:"floor_num,omitempty"`
	Status          string    `json:"status"`
	Views           int       `json:"views"`
	AvgRating       *float64  `json:"avg_rating,omitempty"`
	PostDate        Timestamp `json:"post_date"`
}

// EnrichedListing joins a summary with its per-listing secondary data.
// It lives only for the duration of one search/render cycle.
type EnrichedListing struct {
	ListingSummary
	Images    []string
	Amenities AmenitySet
}

func (l EnrichedListing) CoverImage() string {
	if len(l.Images) > 0 {
		return l.Images[0]
	}
	return ""
}

// ListingDraft carries the fields a user submits when posting a new listing.
type ListingDraft struct {
	UserID          int
	Title           string
	Description     string
	Price           int
	Area            int
	RoomNum         int
	Type            string
	Province        string
	District        string
	Rural           string
	Street          string
	DetailedAddress string
	Deposit         string
	ElectricityFee  int
	WaterFee        int
	InternetFee     int
	VehicleFee      int
	FloorNum        *string
}
