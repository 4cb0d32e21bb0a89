package domain

// Amenity keys match the upstream convenience table columns, including the
// upstream's "bacony" spelling.
const (
	AmenityWifi            = "wifi"
	AmenityAirConditioner  = "air_conditioner"
	AmenityFridge          = "fridge"
	AmenityWashingMachine  = "washing_machine"
	AmenityParkingLot      = "parking_lot"
	AmenitySecurity        = "security"
	AmenityKitchen         = "kitchen"
	AmenityPrivateBathroom = "private_bathroom"
	AmenityFurniture       = "furniture"
	AmenityBalcony         = "bacony"
	AmenityElevator        = "elevator"
	AmenityPetAllowed      = "pet_allowed"
)

var amenityKeys = []string{
	AmenityWifi,
	AmenityAirConditioner,
	AmenityFridge,
	AmenityWashingMachine,
	AmenityParkingLot,
	AmenitySecurity,
	AmenityKitchen,
	AmenityPrivateBathroom,
	AmenityFurniture,
	AmenityBalcony,
	AmenityElevator,
	AmenityPetAllowed,
}

var amenityLabels = map[string]string{
	AmenityWifi:            "Wifi",
	AmenityAirConditioner:  "Điều hòa",
	AmenityFridge:          "Tủ lạnh",
	AmenityWashingMachine:  "Máy giặt",
	AmenityParkingLot:      "Chỗ để xe",
	AmenitySecurity:        "An ninh 24/7",
	AmenityKitchen:         "Nhà bếp",
	AmenityPrivateBathroom: "Nhà vệ sinh riêng",
	AmenityFurniture:       "Nội thất",
	AmenityBalcony:         "Ban công",
	AmenityElevator:        "Thang máy",
	AmenityPetAllowed:      "Cho phép thú cưng",
}

// AmenityKeys returns the fixed key set in display order.
func AmenityKeys() []string {
	keys := make([]string, len(amenityKeys))
	copy(keys, amenityKeys)
	return keys
}

func AmenityLabel(key string) string {
	return amenityLabels[key]
}

func KnownAmenity(key string) bool {
	_, ok := amenityLabels[key]
	return ok
}

// AmenitySet maps amenity keys to flags. Missing keys are treated as false.
type AmenitySet map[string]bool

func (s AmenitySet) Has(key string) bool {
	return s[key]
}

// HasAll reports whether every given key is set. An empty key list always
// matches, including against a nil set.
func (s AmenitySet) HasAll(keys []string) bool {
	for _, key := range keys {
		if !s[key] {
			return false
		}
	}
	return true
}

// Labels returns the Vietnamese labels of the enabled amenities in display
// order.
func (s AmenitySet) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, key := range amenityKeys {
		if s[key] {
			labels = append(labels, amenityLabels[key])
		}
	}
	return labels
}
