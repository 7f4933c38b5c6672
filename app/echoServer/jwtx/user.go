// app/echoServer/jwtx/user.go
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
)

// SessionCookie carries the signed session token. Lives here so both the
// route layer and the auth controller can name it without a cycle.
const SessionCookie = "autodrive_session"

// Session is the request-scoped identity decoded from the cookie.
type Session struct {
	UserID   int64
	Role     model.Role
	Username string
}

func claims(c echo.Context) (jwt.MapClaims, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("no jwt token in context")
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	return mc, nil
}

func SessionFromContext(c echo.Context) (*Session, error) {
	mc, err := claims(c)
	if err != nil {
		return nil, err
	}

	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, errors.New("sub missing in claims")
	}
	role, ok := mc["role"].(string)
	if !ok {
		return nil, errors.New("role missing in claims")
	}
	username, _ := mc["username"].(string)

	return &Session{
		UserID:   int64(sub),
		Role:     model.Role(role),
		Username: username,
	}, nil
}

func UserIDFromContext(c echo.Context) (int64, error) {
	s, err := SessionFromContext(c)
	if err != nil {
		return 0, err
	}
	return s.UserID, nil
}
