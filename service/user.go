package service

import (
	"context"
	"errors"
	"net/http"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/pkg/response"
	"prontoshop/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID int64) (*types.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error
	DeleteAccount(ctx context.Context, userID int64) error
}

type UserService struct {
	UsersRepo   *dao.Users
	AddressRepo *dao.Addresses
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*types.UserResponse, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "user not found")
		}
		return nil, err
	}
	addrs, err := s.AddressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	payloads := make([]types.AddressPayload, 0, len(addrs))
	for _, a := range addrs {
		payloads = append(payloads, types.AddressPayload{
			Id:       a.ID,
			FullName: a.FullName,
			Line1:    a.Line1,
			Line2:    a.Line2,
			City:     a.City,
			State:    a.State,
			Zip:      a.Zip,
			Country:  a.Country,
			Phone:    a.Phone,
		})
	}

	return &types.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IsGuest:   user.IsGuest,
		Addresses: payloads,
	}, nil
}

// UpdateProfile 资料更新。地址走 upsert：有则原地覆盖字段，无则新建，
// 重复提交不会累积地址行。
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error {
	if req.Name != "" {
		if err := s.UsersRepo.Update(ctx, userID, map[string]any{"name": req.Name}); err != nil {
			return err
		}
	}

	if req.Address == nil {
		return nil
	}

	existing, err := s.AddressRepo.FindByUserAndType(ctx, userID, models.AddressTypeShipping)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing == nil {
		addr := addressFromPayload(userID, models.AddressTypeShipping, req.Address)
		return s.AddressRepo.Create(ctx, addr)
	}

	_, err = s.AddressRepo.UpdateById(ctx, existing.ID, map[string]any{
		"full_name": req.Address.FullName,
		"line1":     req.Address.Line1,
		"line2":     req.Address.Line2,
		"city":      req.Address.City,
		"state":     req.Address.State,
		"zip":       req.Address.Zip,
		"country":   req.Address.Country,
		"phone":     req.Address.Phone,
	})
	return err
}

// DeleteAccount 级联删除地址与 refresh token 后删除用户
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.UsersRepo.DeleteCascade(ctx, userID)
}

func addressFromPayload(userID int64, addrType string, p *types.AddressPayload) *models.Address {
	return &models.Address{
		UserID:   userID,
		Type:     addrType,
		FullName: p.FullName,
		Line1:    p.Line1,
		Line2:    p.Line2,
		City:     p.City,
		State:    p.State,
		Zip:      p.Zip,
		Country:  p.Country,
		Phone:    p.Phone,
	}
}
