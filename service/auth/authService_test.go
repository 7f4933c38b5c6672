// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/model"
	userrepo "github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/repository/user"
	"github.com/handifanggo-cmd/Rental-Mobil-Tuan-Muda/util/hash"
)

type mockRepo struct {
	byUsernameFn func(ctx context.Context, username string) (*model.User, error)
	createFn     func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.byUsernameFn == nil {
		return nil, nil
	}
	return m.byUsernameFn(ctx, username)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_AlwaysCustomer(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, err := svc.Register(ctx, model.RegisterReq{
		Username: "budi",
		Password: "supersecret",
		FullName: "Budi Santoso",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, model.RoleCustomer, u.Role)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "supersecret", u.PasswordHash)
	require.True(t, hash.Check(u.PasswordHash, "supersecret"))
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Username: " ",
		Password: "123",
		FullName: "x",
	})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_username_key",
			}
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Username: "budi",
		Password: "123456",
		FullName: "Budi",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Username: "ok",
		Password: "123456",
		FullName: "Ok",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUsernameTaken)
}

func customerRepo(t *testing.T, pw string) *mockRepo {
	hashed := mustHash(t, pw)
	return &mockRepo{
		byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			if username != "budi" {
				return nil, nil
			}
			return &model.User{
				ID:           7,
				Username:     "budi",
				PasswordHash: hashed,
				FullName:     "Budi Santoso",
				Role:         model.RoleCustomer,
			}, nil
		},
	}
}

func TestLogin_Success(t *testing.T) {
	svc := New(customerRepo(t, "supersecret"), "test-secret")

	u, tok, err := svc.Login(context.Background(), model.LoginReq{
		Username: "budi",
		Password: "supersecret",
	}, model.RoleCustomer)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := New(customerRepo(t, "supersecret"), "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Username: "missing",
		Password: "whatever",
	}, model.RoleCustomer)
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := New(customerRepo(t, "correct-password"), "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Username: "budi",
		Password: "wrong-password",
	}, model.RoleCustomer)
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_RoleCrossMatchFails(t *testing.T) {
	// correct customer credentials presented at the admin login
	svc := New(customerRepo(t, "supersecret"), "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Username: "budi",
		Password: "supersecret",
	}, model.RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_BadInput(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Username: " ",
		Password: "",
	}, model.RoleCustomer)
	require.ErrorIs(t, err, ErrBadInput)
}
