package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"prontoshop/config"
	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/encrypt"
	"prontoshop/pkg/jwt"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*types.TokenPairResponse, error)
	Signin(ctx context.Context, req *types.SigninRequest) (*types.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
	TokenRepo *dao.RefreshTokens
}

func (s *AuthService) accessTTL() time.Duration {
	if s.Config.Jwt.ExpireSeconds > 0 {
		return time.Duration(s.Config.Jwt.ExpireSeconds) * time.Second
	}
	return 15 * time.Minute
}

func (s *AuthService) refreshTTL() time.Duration {
	if s.Config.Jwt.RefreshSeconds > 0 {
		return time.Duration(s.Config.Jwt.RefreshSeconds) * time.Second
	}
	return 7 * 24 * time.Hour
}

// issueTokenPair 签发 access/refresh，refresh 落库以支持注销与轮换
func (s *AuthService) issueTokenPair(ctx context.Context, userID int64, role string) (*types.TokenPairResponse, error) {
	access, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), userID, role, "access", s.accessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken([]byte(s.Config.Jwt.RefreshSecret), userID, role, "refresh", s.refreshTTL())
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		UserID:    userID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(s.refreshTTL()),
	}
	if err := s.TokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &types.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*types.TokenPairResponse, error) {
	if s.UsersRepo.IsEmailExist(ctx, req.Email) {
		return nil, response.NewError(http.StatusBadRequest, "email already registered")
	}

	user := &models.User{
		Email:    req.Email,
		Password: encrypt.HashPassword(req.Password),
		Name:     req.Name,
		Role:     models.RoleUser,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusBadRequest, "email already registered")
		}
		return nil, err
	}

	return s.issueTokenPair(ctx, user.ID, user.Role)
}

func (s *AuthService) Signin(ctx context.Context, req *types.SigninRequest) (*types.TokenPairResponse, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "invalid email or password")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.NewError(http.StatusUnauthorized, "invalid email or password")
	}

	return s.issueTokenPair(ctx, user.ID, user.Role)
}

// Refresh 校验并轮换 refresh token，旧 token 即刻作废
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPairResponse, error) {
	record, err := s.TokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "refresh token revoked or unknown")
	}
	if time.Now().After(record.ExpiresAt) {
		_ = s.TokenRepo.DeleteByToken(ctx, refreshToken)
		return nil, response.NewError(http.StatusUnauthorized, "refresh token expired")
	}

	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.RefreshSecret), "refresh", refreshToken)
	if err != nil {
		return nil, response.NewError(http.StatusUnauthorized, err.Error())
	}

	if err := s.TokenRepo.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokenPair(ctx, claims.UserID, claims.Role)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.TokenRepo.DeleteByToken(ctx, refreshToken)
}
