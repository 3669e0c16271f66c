package middleware

import (
	"net/http"

	"getexposure/internal/utils"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "admin-token"

// SessionGuard decides, per request, whether a valid admin session is
// present. It keeps no state: the decision is recomputed from the cookie
// every time. One verification path feeds both response shapes — API
// routes get a 401 JSON body, page routes get a redirect.
type SessionGuard struct {
	JWT        *utils.JWTManager
	CookieName string
}

func (g SessionGuard) cookieName() string {
	if g.CookieName != "" {
		return g.CookieName
	}
	return SessionCookieName
}

// Verify is the single verification function: cookie present and token
// valid, or not. All failure modes look identical to callers.
func (g SessionGuard) Verify(c echo.Context) (*utils.SessionClaims, bool) {
	if g.JWT == nil {
		return nil, false
	}
	cookie, err := c.Cookie(g.cookieName())
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err := g.JWT.ParseSessionToken(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// RequireSession gates API mutations: unauthenticated requests get a 401
// JSON body and never reach the handler (or the content store).
func (g SessionGuard) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := g.Verify(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		}
		SetAuthContext(c, claims.AdminID, claims.Username)
		return next(c)
	}
}

// OptionalSession records the admin identity when the cookie is valid and
// lets the request through either way. Logout uses it: a stale cookie still
// deserves to be cleared.
func (g SessionGuard) OptionalSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := g.Verify(c); ok {
			SetAuthContext(c, claims.AdminID, claims.Username)
		}
		return next(c)
	}
}

// RedirectUnauthenticated gates admin pages: no valid session, go log in.
func (g SessionGuard) RedirectUnauthenticated(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := g.Verify(c)
			if !ok {
				return c.Redirect(http.StatusFound, loginPath)
			}
			SetAuthContext(c, claims.AdminID, claims.Username)
			return next(c)
		}
	}
}

// RedirectAuthenticated sends an already-signed-in admin from the login
// page back to the panel. An invalid cookie falls through to the login page.
func (g SessionGuard) RedirectAuthenticated(adminPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := g.Verify(c); ok {
				return c.Redirect(http.StatusFound, adminPath)
			}
			return next(c)
		}
	}
}
