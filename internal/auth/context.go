package auth

import (
	"github.com/craftally/studio/internal/session"
	"github.com/labstack/echo/v4"
)

// Context holds authentication data to be passed to templates
type Context struct {
	IsAuthenticated bool
	User            *session.UserData
}

// GetAuthContext gets auth context from the request (loaded by the session
// middleware). Identity is an explicit value threaded through the handler
// chain, not ambient state.
func GetAuthContext(c echo.Context) *Context {
	isAuth, _ := c.Get("is_authenticated").(bool)
	if !isAuth {
		return &Context{IsAuthenticated: false}
	}

	sessionUser, ok := c.Get("user").(*session.UserData)
	if !ok || sessionUser == nil {
		return &Context{IsAuthenticated: false}
	}

	return &Context{
		IsAuthenticated: true,
		User:            sessionUser,
	}
}

// UserID returns the authenticated artisan id, if any.
func UserID(c echo.Context) (int64, bool) {
	authCtx := GetAuthContext(c)
	if !authCtx.IsAuthenticated {
		return 0, false
	}
	return authCtx.User.ID, true
}
