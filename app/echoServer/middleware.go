// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/jwtx"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// RequireRole gates a route group on the session role. Mismatch or a
// missing session sends the browser back to the matching login page, the
// same way the public site behaves, never a bare 403.
func RequireRole(role model.Role, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := jwtx.SessionFromContext(c)
			if err != nil || sess.Role != role {
				return c.Redirect(http.StatusFound, loginPath)
			}
			c.Set("user_id", sess.UserID)
			c.Set("username", sess.Username)
			c.Set("role", string(sess.Role))
			return next(c)
		}
	}
}
