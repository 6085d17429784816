package usecase

import (
	"testing"
	"time"

	authdto "sellshot-backend/internal/auth/dto"
	"sellshot-backend/internal/auth/repository"
	"sellshot-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) AuthUsecase {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	return NewAuthUsecase(repository.NewMemoryUserRepository(), cfg)
}

func TestDemoLogin_CreatesAccount(t *testing.T) {
	auth := newTestAuth(t)

	resp, err := auth.DemoLogin(&authdto.DemoLoginRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Demo User", resp.User.Name)
	assert.Equal(t, "user@example.com", resp.User.Email)
	assert.Equal(t, "demo", resp.User.Provider)
	assert.NotEmpty(t, resp.User.AvatarURL)
}

func TestDemoLogin_ReusesExistingAccount(t *testing.T) {
	auth := newTestAuth(t)

	first, err := auth.DemoLogin(&authdto.DemoLoginRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	second, err := auth.DemoLogin(&authdto.DemoLoginRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.Register(&authdto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	resp, err := auth.Login(&authdto.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email)

	_, err = auth.Login(&authdto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)

	req := &authdto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "hunter22"}
	_, err := auth.Register(req)
	require.NoError(t, err)

	_, err = auth.Register(req)
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	auth := newTestAuth(t)

	resp, err := auth.DemoLogin(&authdto.DemoLoginRequest{})
	require.NoError(t, err)

	user, err := auth.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshToken_Rotation(t *testing.T) {
	auth := newTestAuth(t)

	resp, err := auth.DemoLogin(&authdto.DemoLoginRequest{})
	require.NoError(t, err)

	refreshed, err := auth.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)
}

func TestLogout_InvalidatesRefreshToken(t *testing.T) {
	auth := newTestAuth(t)

	resp, err := auth.DemoLogin(&authdto.DemoLoginRequest{})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(resp.RefreshToken))

	_, err = auth.RefreshToken(resp.RefreshToken)
	assert.Error(t, err)
}
