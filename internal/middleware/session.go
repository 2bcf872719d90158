package middleware

import (
	"log/slog"
	"net/http"

	"github.com/craftally/studio/internal/session"
	"github.com/labstack/echo/v4"
)

// LoadSession is middleware that loads the artisan session into Echo context
func LoadSession(sessionMgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userData, err := sessionMgr.GetSession(c)
			if err != nil || userData == nil {
				c.Set("user", nil)
				c.Set("is_authenticated", false)
				return next(c)
			}

			slog.Debug("session loaded", "path", c.Request().URL.Path, "username", userData.Username)
			c.Set("user", userData)
			c.Set("is_authenticated", true)
			return next(c)
		}
	}
}

// RequireLogin redirects unauthenticated requests to the login page.
// Must run after LoadSession.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAuth, _ := c.Get("is_authenticated").(bool)
			if !isAuth {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}
