package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/metrics"
	"github.com/sleepifoxx/timtro-web/internal/service"
	"github.com/sleepifoxx/timtro-web/internal/session"
	"github.com/sleepifoxx/timtro-web/internal/util"
)

// Search sessions are keyed by client and only matter while the client is
// actively searching, so they live in a bounded LRU with a TTL. An evicted
// client just starts a fresh generation sequence.
const (
	searchSessionCap = 4096
	searchSessionTTL = 30 * time.Minute
)

type SearchHandler struct {
	search    *service.SearchService
	favorites *service.FavoriteService
	collector *metrics.Collector
	pageSize  int
	feedSize  int

	mu       sync.Mutex
	sessions *expirable.LRU[string, *service.SearchSession]
}

func RegisterSearch(e *echo.Echo, manager *session.Manager, search *service.SearchService, favorites *service.FavoriteService, collector *metrics.Collector, pageSize, feedSize int) {
	handler := &SearchHandler{
		search:    search,
		favorites: favorites,
		collector: collector,
		pageSize:  pageSize,
		feedSize:  feedSize,
		sessions:  expirable.NewLRU[string, *service.SearchSession](searchSessionCap, nil, searchSessionTTL),
	}

	api := e.Group("/api/v1", WithSession(manager))
	api.GET("/search", handler.searchListings)
	api.GET("/feed", handler.homeFeed)
}

func (h *SearchHandler) searchListings(c echo.Context) error {
	filter, sortKey, page, err := parseSearchRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	limit := h.pageSize
	offset := (page - 1) * limit

	started := time.Now()
	result, generation, err := h.session(c).Submit(c.Request().Context(), filter, sortKey, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrStaleSearch) {
			return c.JSON(http.StatusConflict, util.Error("Yêu cầu tìm kiếm đã bị thay thế bởi yêu cầu mới hơn"))
		}
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	if h.collector != nil {
		h.collector.RecordSearch(time.Since(started))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"listings":   buildCards(result.Listings, h.favoriteIDs(c)),
		"total":      result.Total,
		"page":       page,
		"limit":      limit,
		"generation": generation,
	})
}

func (h *SearchHandler) homeFeed(c echo.Context) error {
	listings, err := h.search.HomeFeed(c.Request().Context(), h.feedSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("Không thể tải danh sách bài đăng"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"listings": buildCards(listings, h.favoriteIDs(c)),
	})
}

// session returns the per-client search session used for the latest-wins
// generation guard. Signed-in clients key by session id, anonymous ones by
// address.
func (h *SearchHandler) session(c echo.Context) *service.SearchSession {
	key := c.RealIP()
	if sess, ok := CurrentSession(c); ok && sess.SID != "" {
		key = sess.SID
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions.Get(key)
	if !ok {
		s = service.NewSearchSession(h.search)
		h.sessions.Add(key, s)
	}
	return s
}

// favoriteIDs loads the heart-fill state for the signed-in user, degrading
// to none on failure.
func (h *SearchHandler) favoriteIDs(c echo.Context) map[int]bool {
	sess, ok := CurrentSession(c)
	if !ok {
		return nil
	}
	ids, err := h.favorites.IDs(c.Request().Context(), sess.UserID)
	if err != nil {
		log.Printf("favorite ids for user %d: %v", sess.UserID, err)
		return nil
	}
	return ids
}

func parseSearchRequest(c echo.Context) (domain.FilterState, domain.SortKey, int, error) {
	filter := domain.DefaultFilter()

	filter.District = strings.TrimSpace(c.QueryParam("district"))
	filter.Province = strings.TrimSpace(c.QueryParam("province"))
	if t := strings.TrimSpace(c.QueryParam("type")); t != "" {
		filter.Type = t
	}

	var err error
	if filter.PriceMin, err = intParam(c, "min_price", filter.PriceMin); err != nil {
		return filter, "", 0, err
	}
	if filter.PriceMax, err = intParam(c, "max_price", filter.PriceMax); err != nil {
		return filter, "", 0, err
	}
	if filter.AreaMin, err = intParam(c, "area_min", filter.AreaMin); err != nil {
		return filter, "", 0, err
	}
	if filter.AreaMax, err = intParam(c, "area_max", filter.AreaMax); err != nil {
		return filter, "", 0, err
	}
	if filter.RoomNum, err = intParam(c, "room_num", 0); err != nil {
		return filter, "", 0, err
	}

	if raw := strings.TrimSpace(c.QueryParam("amenities")); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				filter.Amenities = append(filter.Amenities, key)
			}
		}
	}

	sortKey, err := domain.ParseSortKey(c.QueryParam("sort"))
	if err != nil {
		return filter, "", 0, err
	}

	page, err := intParam(c, "page", 1)
	if err != nil {
		return filter, "", 0, err
	}
	if page < 1 {
		page = 1
	}

	return filter, sortKey, page, nil
}

func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return v, nil
}
