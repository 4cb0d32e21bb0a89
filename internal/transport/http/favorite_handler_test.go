package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/service"
)

// failingFavoriteStore reads fine but refuses every write.
type failingFavoriteStore struct{}

func (failingFavoriteStore) ListByUser(context.Context, int) ([]domain.Favorite, error) {
	return nil, nil
}

func (failingFavoriteStore) Add(context.Context, int, int) error {
	return errBackendDown
}

func (failingFavoriteStore) Remove(context.Context, int, int) error {
	return errBackendDown
}

var errBackendDown = errors.New("favorites backend unavailable")

func TestFavoriteHandler_ToggleWithoutCollectorSurvivesBackendFailure(t *testing.T) {
	handler := &FavoriteHandler{
		favorites: service.NewFavoriteService(failingFavoriteStore{}, nil, nil),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/me/favorites/5/toggle", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set(contextSessionKey, &domain.UserSession{SID: "s1", UserID: 10})

	if err := handler.toggleFavorite(c); err != nil {
		t.Fatalf("toggleFavorite returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with error notification, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Không thể cập nhật danh sách yêu thích") {
		t.Fatalf("expected failure notification in body, got %s", rec.Body.String())
	}
}
