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

type AuthHandler struct {
	accounts *service.AccountService
	sessions *session.Manager
}

func RegisterAuth(e *echo.Echo, manager *session.Manager, accounts *service.AccountService) {
	handler := &AuthHandler{accounts: accounts, sessions: manager}

	group := e.Group("/api/v1/auth")
	group.POST("/login", handler.login)
	group.POST("/signup", handler.signup)
	group.POST("/logout", handler.logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Dữ liệu không hợp lệ"))
	}

	user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error("Email hoặc mật khẩu không đúng"))
		}
		return c.JSON(http.StatusBadGateway, util.Error("Không thể đăng nhập, vui lòng thử lại"))
	}

	sess, err := h.sessions.Issue(c, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("Không thể tạo phiên đăng nhập"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"user":       user,
		"session_id": sess.SID,
	})
}

type signupRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number"`
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Dữ liệu không hợp lệ"))
	}

	user, err := h.accounts.Signup(c.Request().Context(), domain.SignupInput{
		Email:         req.Email,
		Password:      req.Password,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusConflict, util.Error("Email đã được sử dụng"))
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, util.Error("Email hoặc mật khẩu không hợp lệ"))
		}
		return c.JSON(http.StatusBadGateway, util.Error("Không thể đăng ký, vui lòng thử lại"))
	}

	sess, err := h.sessions.Issue(c, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("Không thể tạo phiên đăng nhập"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"user":       user,
		"session_id": sess.SID,
	})
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, util.Message("Đã đăng xuất"))
}
