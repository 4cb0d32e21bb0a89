package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/session"
)

func issueCookie(t *testing.T, manager *session.Manager, user *domain.User) *http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	if _, err := manager.Issue(c, user); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestRequireSession_RejectsAnonymous(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, false)
	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireSession(manager))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireSession_PassesIdentity(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, false)
	cookie := issueCookie(t, manager, &domain.User{ID: 42, FullName: "Ngọc"})

	var seen *domain.UserSession
	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		seen, _ = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	}, RequireSession(manager))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.UserID != 42 {
		t.Fatalf("expected session for user 42, got %+v", seen)
	}
}

func TestWithSession_AnonymousPassesThrough(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, false)

	e := echo.New()
	e.GET("/public", func(c echo.Context) error {
		if _, ok := CurrentSession(c); ok {
			t.Fatal("anonymous request must carry no session")
		}
		return c.NoContent(http.StatusOK)
	}, WithSession(manager))

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
