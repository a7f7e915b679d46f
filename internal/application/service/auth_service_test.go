package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		Name:     "Operador",
		Email:    "taller@example.com",
		Password: hash,
	}))
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, jwtManager), userRepo
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "taller@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "taller@example.com", out.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "taller@example.com", Password: "nope"})
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "ghost@example.com", Password: "secret123"})
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	out, err := svc.Login(ctx, &LoginInput{Email: "taller@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenInvalid(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
