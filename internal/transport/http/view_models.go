package http

import (
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// ListingCardResponse is the render-ready card shape shared by the feed,
// search, favorites and my-listings pages.
type ListingCardResponse struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Price          int      `json:"price"`
	FormattedPrice string   `json:"formatted_price"`
	Area           int      `json:"area"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	District       string   `json:"district"`
	City           string   `json:"city"`
	Image          string   `json:"image"`
	Amenities      []string `json:"amenities"`
	PostDate       string   `json:"post_date"`
	IsFavorite     bool     `json:"is_favorite"`
}

type ListingDetailResponse struct {
	ListingCardResponse
	Description     string            `json:"description"`
	RoomNum         int               `json:"room_num"`
	Deposit         string            `json:"deposit"`
	ElectricityFee  int               `json:"electricity_fee"`
	WaterFee        int               `json:"water_fee"`
	InternetFee     int               `json:"internet_fee"`
	VehicleFee      int               `json:"vehicle_fee"`
	FloorNum        *string           `json:"floor_num,omitempty"`
	Rural           string            `json:"rural"`
	Street          string            `json:"street"`
	DetailedAddress string            `json:"detailed_address"`
	Views           int               `json:"views"`
	AvgRating       *float64          `json:"avg_rating,omitempty"`
	Images          []string          `json:"images"`
	Comments        []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id"`
	Content string  `json:"content"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
}

func buildCard(l domain.EnrichedListing, favorite bool) ListingCardResponse {
	return ListingCardResponse{
		ID:             l.ID,
		Title:          l.Title,
		Price:          l.Price,
		FormattedPrice: formatPrice(l.Price),
		Area:           l.Area,
		Type:           l.Type,
		Status:         statusLabel(l.Status),
		District:       l.District,
		City:           l.Province,
		Image:          l.CoverImage(),
		Amenities:      l.Amenities.Labels(),
		PostDate:       l.PostDate.Format("02/01/2006"),
		IsFavorite:     favorite,
	}
}

func buildCards(listings []domain.EnrichedListing, favoriteIDs map[int]bool) []ListingCardResponse {
	cards := make([]ListingCardResponse, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, buildCard(l, favoriteIDs[l.ID]))
	}
	return cards
}

func buildDetail(d domain.EnrichedListing, comments []domain.Comment, favorite bool) ListingDetailResponse {
	resp := ListingDetailResponse{
		ListingCardResponse: buildCard(d, favorite),
		Description:         d.Description,
		RoomNum:             d.RoomNum,
		Deposit:             d.Deposit,
		ElectricityFee:      d.ElectricityFee,
		WaterFee:            d.WaterFee,
		InternetFee:         d.InternetFee,
		VehicleFee:          d.VehicleFee,
		FloorNum:            d.FloorNum,
		Rural:               d.Rural,
		Street:              d.Street,
		DetailedAddress:     d.DetailedAddress,
		Views:               d.Views,
		AvgRating:           d.AvgRating,
		Images:              d.Images,
		Comments:            make([]CommentResponse, 0, len(comments)),
	}
	for _, cm := range comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:      cm.ID,
			UserID:  cm.UserID,
			Content: cm.Content,
			Rating:  cm.Rating,
			Date:    cm.Date.Format("02/01/2006"),
		})
	}
	return resp
}

// formatPrice renders a VND amount with Vietnamese digit grouping,
// e.g. 1500000 -> "1.500.000".
func formatPrice(price int) string {
	raw := strconv.Itoa(price)
	negative := false
	if len(raw) > 0 && raw[0] == '-' {
		negative = true
		raw = raw[1:]
	}

	var out []byte
	for i, digit := range []byte(raw) {
		if i > 0 && (len(raw)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digit)
	}
	if negative {
		return "-" + string(out)
	}
	return string(out)
}

func statusLabel(status string) string {
	switch status {
	case domain.ListingStatusApproved:
		return "Còn trống"
	case domain.ListingStatusPending:
		return "Chờ duyệt"
	case domain.ListingStatusRejected:
		return "Bị từ chối"
	case "rented":
		return "Đã thuê"
	case "":
		return "Còn trống"
	}
	return status
}
