package service

import (
	"context"
	"net/http"
	"testing"

	"prontoshop/config"
	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		Config: &config.Config{
			Jwt: &config.Jwt{
				Secret:         "test-access-secret",
				RefreshSecret:  "test-refresh-secret",
				ExpireSeconds:  60,
				RefreshSeconds: 3600,
			},
		},
		UsersRepo: dao.NewUsers(db),
		TokenRepo: dao.NewRefreshTokens(db),
	}
}

func TestSignupAndSignin(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)
	ctx := context.Background()

	pair, err := s.Signup(ctx, &types.SignupRequest{Email: "a@example.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// 重复注册 400
	_, err = s.Signup(ctx, &types.SignupRequest{Email: "a@example.com", Password: "secret123", Name: "A"})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)

	_, err = s.Signin(ctx, &types.SigninRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	// 密码不对 401
	_, err = s.Signin(ctx, &types.SigninRequest{Email: "a@example.com", Password: "wrong-pass"})
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Code)

	// 密码不落明文
	var user models.User
	require.NoError(t, db.Where("email = ?", "a@example.com").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)
	ctx := context.Background()

	pair, err := s.Signup(ctx, &types.SignupRequest{Email: "r@example.com", Password: "secret123", Name: "R"})
	require.NoError(t, err)

	next, err := s.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// 旧 refresh token 已作废
	_, err = s.Refresh(ctx, pair.RefreshToken)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)
	ctx := context.Background()

	pair, err := s.Signup(ctx, &types.SignupRequest{Email: "l@example.com", Password: "secret123", Name: "L"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, pair.RefreshToken))

	_, err = s.Refresh(ctx, pair.RefreshToken)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Code)
}
