package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/session"
	"github.com/sleepifoxx/timtro-web/internal/util"
)

const contextSessionKey = "timtro.session"

// WithSession injects the signed-in identity when a valid session cookie is
// present. Anonymous requests pass through.
func WithSession(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sess, err := manager.Read(c); err == nil {
				c.Set(contextSessionKey, sess)
			}
			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests.
func RequireSession(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := manager.Read(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("Vui lòng đăng nhập để tiếp tục"))
			}
			c.Set(contextSessionKey, sess)
			return next(c)
		}
	}
}

func CurrentSession(c echo.Context) (*domain.UserSession, bool) {
	sess, ok := c.Get(contextSessionKey).(*domain.UserSession)
	return sess, ok && sess != nil
}
