// app/echoServer/controller/auth/authController.go
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/app/echoServer/jwtx"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	authsvc "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/service/auth"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Register a new customer account
// @Summary      Register customer
// @Description  Creates a customer account; the role field cannot be chosen
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      302
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "username already taken"
// @Router       /register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	if _, err := ct.Svc.Register(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, authsvc.ErrUsernameTaken):
			return echo.NewHTTPError(http.StatusConflict, "username already taken")
		case errors.Is(err, authsvc.ErrBadInput):
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
		}
	}

	// Pendaftaran berhasil, silakan login.
	return c.Redirect(http.StatusFound, "/login/customer")
}

func (ct *Controller) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "submit username, password, nama"})
}

func (ct *Controller) LoginAdminPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "admin login"})
}

func (ct *Controller) LoginCustomerPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "customer login"})
}

// LoginAdmin
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      302
// @Failure      401  {object}  map[string]any
// @Router       /login/admin [post]
func (ct *Controller) LoginAdmin(c echo.Context) error {
	return ct.login(c, model.RoleAdmin, "/admin/dashboard", "Login Admin Gagal!")
}

// LoginCustomer
// @Summary      Customer login
// @Tags         auth
// @Accept       json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      302
// @Failure      401  {object}  map[string]any
// @Router       /login/customer [post]
func (ct *Controller) LoginCustomer(c echo.Context) error {
	return ct.login(c, model.RoleCustomer, "/customer/dashboard", "Login Customer Gagal!")
}

func (ct *Controller) login(c echo.Context, role model.Role, successPath, failMsg string) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	_, token, err := ct.Svc.Login(c.Request().Context(), req, role)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrInvalidCreds), errors.Is(err, authsvc.ErrBadInput):
			// one message for every mismatch, nothing to enumerate
			return echo.NewHTTPError(http.StatusUnauthorized, failMsg)
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	c.SetCookie(sessionCookie(token, 12*time.Hour))
	return c.Redirect(http.StatusFound, successPath)
}

// Logout clears the session unconditionally.
func (ct *Controller) Logout(c echo.Context) error {
	c.SetCookie(sessionCookie("", -time.Hour))
	return c.Redirect(http.StatusFound, "/")
}

func sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     jwtx.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
