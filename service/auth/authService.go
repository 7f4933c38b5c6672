package authsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	userrepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/user"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/util/hash"
	jwtutil "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/util/jwt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrBadInput      = errors.New("bad input")
	ErrInvalidCreds  = errors.New("invalid credentials")
	ErrUsernameTaken = errors.New("username already taken")
)

const sessionTTLHours = 12

type Service interface {
	// Register creates a customer account. The role is never taken from
	// the request.
	Register(ctx context.Context, req model.RegisterReq) (*model.User, error)

	// Login authenticates against a fixed role and returns the session
	// token. Unknown user, wrong password and wrong role all fail the
	// same way.
	Login(ctx context.Context, req model.LoginReq, role model.Role) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || fullName == "" || len(req.Password) < 6 {
		return nil, ErrBadInput
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     username,
		PasswordHash: hashed,
		FullName:     fullName,
		Role:         model.RoleCustomer,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return u, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "users_username") || strings.Contains(msg, "username") {
			return ErrUsernameTaken
		}
		return ErrBadInput
	}
	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq, role model.Role) (*model.User, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, "", ErrBadInput
	}

	u, err := s.ur.ByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) || u.Role != role {
		return nil, "", ErrInvalidCreds
	}

	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Role), u.Username, sessionTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
