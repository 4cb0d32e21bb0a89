package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/metrics"
	"github.com/sleepifoxx/timtro-web/internal/service"
	"github.com/sleepifoxx/timtro-web/internal/session"
	"github.com/sleepifoxx/timtro-web/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
	collector *metrics.Collector
}

func RegisterFavorites(e *echo.Echo, manager *session.Manager, favorites *service.FavoriteService, collector *metrics.Collector) {
	handler := &FavoriteHandler{favorites: favorites, collector: collector}

	group := e.Group("/api/v1/me/favorites", RequireSession(manager))
	group.GET("", handler.listFavorites)
	group.POST("/:id/toggle", handler.toggleFavorite)
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	sess, _ := CurrentSession(c)

	listings, err := h.favorites.ListEnriched(c.Request().Context(), sess.UserID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, util.Error("Không thể tải danh sách yêu thích"))
	}

	favs := make(map[int]bool, len(listings))
	for _, l := range listings {
		favs[l.ID] = true
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"favorites": buildCards(listings, favs),
	})
}

// toggleFavorite flips the saved state for one listing. The response always
// carries the settled state and the notification the UI should show; a
// failed backend write reverts the state and reports it in the same shape.
func (h *FavoriteHandler) toggleFavorite(c echo.Context) error {
	sess, _ := CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("Mã bài đăng không hợp lệ"))
	}

	state, note, err := h.favorites.Toggle(c.Request().Context(), sess.UserID, id)
	if err != nil && h.collector != nil {
		h.collector.RecordFavoriteError()
	}

	return c.JSON(http.StatusOK, util.Data("is_favorite", state == service.FavoriteSaved).With("notification", note))
}
