package echoweb

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "edulog_flash"

// Flash is a one-shot message displayed on the next rendered page.
type Flash struct {
	Category string // success, info, danger
	Message  string
}

func addFlash(ctx echo.Context, category, message string) {
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlashes reads and clears the pending flash message.
func popFlashes(ctx echo.Context) []Flash {
	cookie, err := ctx.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	val, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(val, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return []Flash{{Category: parts[0], Message: parts[1]}}
}
