package middleware

import "github.com/labstack/echo/v4"

const (
	contextAdminIDKey  = "auth_admin_id"
	contextUsernameKey = "auth_username"
)

func SetAuthContext(c echo.Context, adminID uint, username string) {
	c.Set(contextAdminIDKey, adminID)
	c.Set(contextUsernameKey, username)
}

func AdminIDFromContext(c echo.Context) (uint, bool) {
	value := c.Get(contextAdminIDKey)
	adminID, ok := value.(uint)
	return adminID, ok
}

func UsernameFromContext(c echo.Context) (string, bool) {
	value := c.Get(contextUsernameKey)
	username, ok := value.(string)
	return username, ok
}
