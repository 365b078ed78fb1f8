package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authRequired parses the JWT session cookie and stores the Claims in the
// request context; anonymous requests are sent to the login form.
func (s *Server) authRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(authCookieName)
		if err != nil || cookie.Value == "" {
			return ctx.Redirect(http.StatusFound, "/login")
		}
		claims, err := parseToken(cookie.Value)
		if err != nil {
			clearAuthCookie(ctx)
			return ctx.Redirect(http.StatusFound, "/login")
		}
		ctx.Set(contextClaimsKey, claims)
		return next(ctx)
	}
}

func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.IsAdmin {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}

// headMiddleware admits Leaders and Admins.
func headMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.IsAdmin || claims.IsLeader {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}
