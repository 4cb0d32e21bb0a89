package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/service"
	"github.com/sleepifoxx/timtro-web/internal/session"
	"github.com/sleepifoxx/timtro-web/internal/util"
)

type ListingHandler struct {
	listings  *service.ListingService
	favorites *service.FavoriteService
}

func RegisterListings(e *echo.Echo, manager *session.Manager, listings *service.ListingService, favorites *service.FavoriteService) {
	handler := &ListingHandler{listings: listings, favorites: favorites}

	public := e.Group("/api/v1/listings", WithSession(manager))
	public.GET("/:id", handler.getListing)

	protected := e.Group("/api/v1/listings", RequireSession(manager))
	protected.POST("", handler.createListing)
	protected.POST("/:id/comments", handler.addComment)
}

func (h *ListingHandler) getListing(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("Mã bài đăng không hợp lệ"))
	}

	viewerID := 0
	if sess, ok := CurrentSession(c); ok {
		viewerID = sess.UserID
	}

	detail, err := h.listings.Detail(c.Request().Context(), id, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Không tìm thấy bài đăng"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("Không thể tải bài đăng"))
	}

	favorite := false
	if viewerID > 0 {
		state, err := h.favorites.State(c.Request().Context(), viewerID, id)
		if err == nil {
			favorite = state == service.FavoriteSaved
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"listing": buildDetail(detail.EnrichedListing, detail.Comments, favorite),
	})
}

type createListingRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           int      `json:"price"`
	Area            int      `json:"area"`
	RoomNum         int      `json:"room_num"`
	Type            string   `json:"type"`
	Deposit         string   `json:"deposit"`
	ElectricityFee  int      `json:"electricity_fee"`
	WaterFee        int      `json:"water_fee"`
	InternetFee     int      `json:"internet_fee"`
	VehicleFee      int      `json:"vehicle_fee"`
	FloorNum        *string  `json:"floor_num"`
	Province        string   `json:"province"`
	District        string   `json:"district"`
	Rural           string   `json:"rural"`
	Street          string   `json:"street"`
	DetailedAddress string   `json:"detailed_address"`
	Amenities       []string `json:"amenities"`
	ImageURLs       []string `json:"image_urls"`
}

func (h *ListingHandler) createListing(c echo.Context) error {
	sess, _ := CurrentSession(c)

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Dữ liệu không hợp lệ"))
	}

	amenities := make(domain.AmenitySet, len(req.Amenities))
	for _, key := range req.Amenities {
		if !domain.KnownAmenity(key) {
			return c.JSON(http.StatusBadRequest, util.Error("Tiện ích không hợp lệ: "+key))
		}
		amenities[key] = true
	}

	draft := domain.ListingDraft{
		UserID:          sess.UserID,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Area:            req.Area,
		RoomNum:         req.RoomNum,
		Type:            req.Type,
		Deposit:         req.Deposit,
		ElectricityFee:  req.ElectricityFee,
		WaterFee:        req.WaterFee,
		InternetFee:     req.InternetFee,
		VehicleFee:      req.VehicleFee,
		FloorNum:        req.FloorNum,
		Province:        req.Province,
		District:        req.District,
		Rural:           req.Rural,
		Street:          req.Street,
		DetailedAddress: req.DetailedAddress,
	}

	created, err := h.listings.Create(c.Request().Context(), draft, amenities, req.ImageURLs)
	if err != nil {
		if errors.Is(err, service.ErrListingValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusBadGateway, util.Error("Không thể đăng tin, vui lòng thử lại"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"post_id": created.ID,
		"message": "Đăng tin thành công, bài viết đang chờ duyệt",
	})
}

type addCommentRequest struct {
	Content string  `json:"content"`
	Rating  float64 `json:"rating"`
}

func (h *ListingHandler) addComment(c echo.Context) error {
	sess, _ := CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("Mã bài đăng không hợp lệ"))
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Dữ liệu không hợp lệ"))
	}

	comment, err := h.listings.AddComment(c.Request().Context(), domain.CommentInput{
		PostID:  id,
		UserID:  sess.UserID,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		if errors.Is(err, service.ErrCommentValidation) {
			return c.JSON(http.StatusBadRequest, util.Error("Nội dung bình luận không hợp lệ"))
		}
		return c.JSON(http.StatusBadGateway, util.Error("Không thể gửi bình luận"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"comment": CommentResponse{
			ID:      comment.ID,
			UserID:  comment.UserID,
			Content: comment.Content,
			Rating:  comment.Rating,
			Date:    comment.Date.Format("02/01/2006"),
		},
	})
}
