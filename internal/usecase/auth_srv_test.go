package usecase

import (
	"context"
	"testing"

	"album-shop/internal/data/entity"
	"album-shop/internal/data/repository"
	"album-shop/internal/dto/request"
	"album-shop/internal/errs"
	"album-shop/internal/token"
	"album-shop/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthServiceForTest(repo *repository.Repository) AuthService {
	config := &utils.Config{
		Auth: utils.AuthConfig{
			AdminCode:  "sesame",
			BcryptCost: 4,
		},
	}
	issuer := token.NewIssuer("test-secret", 1)
	return NewAuthService(repo, issuer, config, zap.NewNop())
}

func registerReq(username string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	}
}

func TestRegister_DefaultRole(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role)

	user, err := repo.User.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	// Plaintext never stored
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))
}

func TestRegister_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("alice"))
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestRegister_AdminElevation(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	// Wrong code is rejected and nothing is created
	req := registerReq("mallory")
	req.Role = "admin"
	req.AdminCode = "wrong"
	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	user, err := repo.User.FindByUsername(ctx, "mallory")
	require.NoError(t, err)
	assert.Nil(t, user)

	// Correct code elevates
	req = registerReq("root")
	req.Role = "admin"
	req.AdminCode = "sesame"
	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestRegister_Invalid(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	req := registerReq("al") // username too short
	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	req = registerReq("alice")
	req.Password = "short"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "alice", resp.Username)
}

func TestLogin_BadCredentials(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	// Wrong password and unknown account fail the same way
	_, wrongPass := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, wrongPass, errs.ErrUnauthorized)

	_, noUser := svc.Login(ctx, &request.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, noUser, errs.ErrUnauthorized)

	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestAuthorize(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	subject, err := svc.Authorize(ctx, resp.AccessToken, "")
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// Garbage tokens are rejected without touching the ledger
	_, err = svc.Authorize(ctx, "garbage", "")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestAuthorize_AfterLogout(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))

	// The token still has a valid signature but its jti is revoked
	_, err = svc.Authorize(ctx, resp.AccessToken, "")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	// Logout is idempotent
	assert.NoError(t, svc.Logout(ctx, resp.AccessToken))
}

func TestAuthorize_RoleGate(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice"))
	require.NoError(t, err)

	adminReq := registerReq("root")
	adminReq.Role = "admin"
	adminReq.AdminCode = "sesame"
	_, err = svc.Register(ctx, adminReq)
	require.NoError(t, err)

	userToken, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	adminToken, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "root@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, userToken.AccessToken, entity.RoleAdmin)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	subject, err := svc.Authorize(ctx, adminToken.AccessToken, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "root", subject)
}

func TestLogout_InvalidToken(t *testing.T) {
	repo := newFakeRepository()
	svc := newAuthServiceForTest(repo)

	err := svc.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
