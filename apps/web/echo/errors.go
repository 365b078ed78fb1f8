package echoweb

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/user"
)

var (
	errUnauthenticated      = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "Invalid Credentials")
	errHTTPForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound         = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that renders
// the error page and knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever
// a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message, _ = origErr.Message.(string)
		case validator.ValidationErrors:
			fldErrs := make([]string, 0, len(origErr))
			for _, fErr := range core.TranslateValidationErrors(origErr) {
				fldErrs = append(fldErrs, fErr.Field+": "+fErr.Error)
			}
			code = http.StatusBadRequest
			message = strings.Join(fldErrs, "; ")
		case *core.ValidationError:
			code = http.StatusBadRequest
			if len(origErr.Fields) > 0 {
				fldErrs := make([]string, 0, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs = append(fldErrs, fErr.Field+": "+fErr.Error)
				}
				message = strings.Join(fldErrs, "; ")
			} else {
				message = origErr.Error()
			}
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(code)

			var usr user.User
			if claims, cErr := getContextClaims(ctx); cErr == nil {
				usr.ID, _ = strconv.Atoi(claims.Subject)
				usr.Username = claims.Username
				usr.FullName = claims.FullName
			}
			logger.Error(message, errors.Wrap(err, message), usr)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if message == "" {
			message = http.StatusText(code)
		}
		if ctx.Echo().Debug {
			message = err.Error()
		}

		if !ctx.Response().Committed {
			var rErr error
			if ctx.Request().Method == http.MethodHead { // Issue #608
				rErr = ctx.NoContent(code)
			} else {
				rErr = ctx.Render(code, "error.html", echo.Map{
					"code":    code,
					"status":  http.StatusText(code),
					"message": message,
				})
				if rErr != nil {
					rErr = ctx.String(code, message)
				}
			}
			if rErr != nil {
				ctx.Echo().Logger.Error(rErr)
			}
		}
	}
}
