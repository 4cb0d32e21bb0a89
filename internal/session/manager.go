// Package session owns the signed session cookie. Handlers read the signed
// identity through the Manager instead of picking cookies apart themselves,
// so there is a single read/write boundary for session state.
package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

const CookieName = "timtro_session"

var ErrNoSession = errors.New("session: no valid session")

type Manager struct {
	key    []byte
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{key: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs a fresh session for the user and sets the cookie.
func (m *Manager) Issue(c echo.Context, user *domain.User) (*domain.UserSession, error) {
	sid := uuid.NewString()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(user.ID),
		"name": user.FullName,
		"sid":  sid,
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return nil, err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return &domain.UserSession{SID: sid, UserID: user.ID, FullName: user.FullName}, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read parses and verifies the session cookie.
func (m *Manager) Read(c echo.Context) (*domain.UserSession, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	return m.Parse(cookie.Value)
}

// Parse verifies a raw signed token and extracts the session identity.
func (m *Manager) Parse(raw string) (*domain.UserSession, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.Atoi(sub)
	if err != nil || userID <= 0 {
		return nil, ErrNoSession
	}
	name, _ := claims["name"].(string)
	sid, _ := claims["sid"].(string)

	return &domain.UserSession{SID: sid, UserID: userID, FullName: name}, nil
}
