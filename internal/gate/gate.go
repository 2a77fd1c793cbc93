package gate

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/session"
)

// Gate conditions screen access on session presence. Token presence is the
// only authority signal; nothing inspects the token's contents.
type Gate struct {
	Sessions *session.Store
}

// RequireSession guards operator-only screens. Without a live session the
// request is redirected to /login and the attempted destination is
// discarded. With one, the token and profile ride the request context for
// the resource client and the chrome.
func (g *Gate) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie := cookieValue(c)
		token, ok := g.Sessions.Token(cookie)
		if !ok {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		ctx := session.WithToken(c.Request().Context(), token)
		ctx = session.WithProfile(ctx, g.Sessions.Profile(cookie))
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RedirectAuthenticated applies to the login screen only: an operator who
// already holds a session lands on the dashboard instead.
func (g *Gate) RedirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := g.Sessions.Token(cookieValue(c)); ok {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return next(c)
	}
}

// Resolve is for screens reachable either way: it attaches whatever session
// state exists without redirecting.
func (g *Gate) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie := cookieValue(c)
		ctx := c.Request().Context()
		if token, ok := g.Sessions.Token(cookie); ok {
			ctx = session.WithToken(ctx, token)
		}
		ctx = session.WithProfile(ctx, g.Sessions.Profile(cookie))
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func cookieValue(c echo.Context) string {
	ck, err := c.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}
