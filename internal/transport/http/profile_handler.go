package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/service"
	"github.com/sleepifoxx/timtro-web/internal/session"
	"github.com/sleepifoxx/timtro-web/internal/util"
)

type ProfileHandler struct {
	accounts     *service.AccountService
	listings     *service.ListingService
	historyLimit int
}

func RegisterProfile(e *echo.Echo, manager *session.Manager, accounts *service.AccountService, listings *service.ListingService, historyLimit int) {
	handler := &ProfileHandler{accounts: accounts, listings: listings, historyLimit: historyLimit}

	group := e.Group("/api/v1/me", RequireSession(manager))
	group.GET("", handler.getProfile)
	group.PUT("", handler.updateProfile)
	group.GET("/history", handler.history)
	group.DELETE("/history", handler.clearHistory)
	group.GET("/listings", handler.ownListings)
}

func (h *ProfileHandler) getProfile(c echo.Context) error {
	sess, _ := CurrentSession(c)

	profile, err := h.accounts.Profile(c.Request().Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Không tìm thấy tài khoản"))
		}
		return c.JSON(http.StatusBadGateway, util.Error("Không thể tải thông tin tài khoản"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"user":  profile.User,
		"stats": profile.Stats,
	})
}

type updateProfileRequest struct {
	Password      string `json:"password"`
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number"`
	AvatarURL     string `json:"avatar_url"`
}

func (h *ProfileHandler) updateProfile(c echo.Context) error {
	sess, _ := CurrentSession(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Dữ liệu không hợp lệ"))
	}

	user, err := h.accounts.Update(c.Request().Context(), domain.UserUpdate{
		UserID:        sess.UserID,
		Password:      req.Password,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, util.Error("Vui lòng nhập mật khẩu để xác nhận"))
		}
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Không tìm thấy tài khoản"))
		}
		return c.JSON(http.StatusBadGateway, util.Error("Không thể cập nhật thông tin"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"user": user})
}

func (h *ProfileHandler) history(c echo.Context) error {
	sess, _ := CurrentSession(c)

	listings, err := h.listings.RecentlyViewed(c.Request().Context(), sess.UserID, h.historyLimit)
	if err != nil {
		return c.JSON(http.StatusBadGateway, util.Error("Không thể tải lịch sử xem"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"history": buildCards(listings, nil),
	})
}

func (h *ProfileHandler) clearHistory(c echo.Context) error {
	sess, _ := CurrentSession(c)

	if err := h.listings.ClearHistory(c.Request().Context(), sess.UserID); err != nil {
		return c.JSON(http.StatusBadGateway, util.Error("Không thể xóa lịch sử xem"))
	}
	return c.JSON(http.StatusOK, util.Message("Đã xóa lịch sử xem"))
}

func (h *ProfileHandler) ownListings(c echo.Context) error {
	sess, _ := CurrentSession(c)

	listings, err := h.listings.OwnListings(c.Request().Context(), sess.UserID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, util.Error("Không thể tải danh sách tin đăng"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"listings": buildCards(listings, nil),
	})
}
