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

var _ IVendorService = (*VendorService)(nil)

type IVendorService interface {
	Signup(ctx context.Context, req *types.VendorSignupRequest) (*types.TokenPairResponse, error)
	Signin(ctx context.Context, req *types.SigninRequest) (*types.TokenPairResponse, error)
	Get(ctx context.Context, vendorID int64) (*types.VendorResponse, error)
	List(ctx context.Context) ([]*types.VendorResponse, error)
	Update(ctx context.Context, vendorID int64, req *types.UpdateVendorRequest) error
	Delete(ctx context.Context, vendorID int64) error
}

type VendorService struct {
	Config      *config.Config
	VendorsRepo *dao.Vendors
}

func (s *VendorService) Signup(ctx context.Context, req *types.VendorSignupRequest) (*types.TokenPairResponse, error) {
	if s.VendorsRepo.IsEmailExist(ctx, req.Email) {
		return nil, response.NewError(http.StatusBadRequest, "email already registered")
	}

	vendor := &models.Vendor{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     encrypt.HashPassword(req.Password),
		Phone:        req.Phone,
		Description:  req.Description,
	}
	if err := s.VendorsRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusBadRequest, "email already registered")
		}
		return nil, err
	}

	return s.tokenPair(vendor.ID)
}

func (s *VendorService) Signin(ctx context.Context, req *types.SigninRequest) (*types.TokenPairResponse, error) {
	vendor, err := s.VendorsRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "invalid email or password")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(vendor.Password, req.Password) {
		return nil, response.NewError(http.StatusUnauthorized, "invalid email or password")
	}
	return s.tokenPair(vendor.ID)
}

func (s *VendorService) tokenPair(vendorID int64) (*types.TokenPairResponse, error) {
	access, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), vendorID, models.RoleVendor, "access", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken([]byte(s.Config.Jwt.RefreshSecret), vendorID, models.RoleVendor, "refresh", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	return &types.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *VendorService) Get(ctx context.Context, vendorID int64) (*types.VendorResponse, error) {
	vendor, err := s.VendorsRepo.FindById(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "vendor not found")
		}
		return nil, err
	}
	return vendorResponse(vendor), nil
}

func (s *VendorService) List(ctx context.Context) ([]*types.VendorResponse, error) {
	vendors, err := s.VendorsRepo.FindAllByWhere(ctx, "1 = 1")
	if err != nil {
		return nil, err
	}
	resp := make([]*types.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp = append(resp, vendorResponse(v))
	}
	return resp, nil
}

// Update 商家资料更新。地址按 id 是否带值区分“更新现有”与“新建”，
// 不带 id 且已有地址时同样原地覆盖，避免地址行越积越多。
func (s *VendorService) Update(ctx context.Context, vendorID int64, req *types.UpdateVendorRequest) error {
	updates := map[string]any{}
	if req.BusinessName != "" {
		updates["business_name"] = req.BusinessName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.LogoURL != "" {
		updates["logo_url"] = req.LogoURL
	}
	if len(updates) > 0 {
		if _, err := s.VendorsRepo.UpdateById(ctx, vendorID, updates); err != nil {
			return err
		}
	}

	if req.Address == nil {
		return nil
	}

	fields := map[string]any{
		"line1":   req.Address.Line1,
		"line2":   req.Address.Line2,
		"city":    req.Address.City,
		"state":   req.Address.State,
		"zip":     req.Address.Zip,
		"country": req.Address.Country,
	}

	if req.Address.Id > 0 {
		return s.VendorsRepo.UpdateAddress(ctx, req.Address.Id, fields)
	}

	existing, err := s.VendorsRepo.FindAddress(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			addr := &models.VendorAddress{
				VendorID: vendorID,
				Line1:    req.Address.Line1,
				Line2:    req.Address.Line2,
				City:     req.Address.City,
				State:    req.Address.State,
				Zip:      req.Address.Zip,
				Country:  req.Address.Country,
			}
			return s.VendorsRepo.CreateAddress(ctx, addr)
		}
		return err
	}
	return s.VendorsRepo.UpdateAddress(ctx, existing.ID, fields)
}

func (s *VendorService) Delete(ctx context.Context, vendorID int64) error {
	return s.VendorsRepo.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&models.VendorAddress{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", vendorID).Delete(&models.Vendor{}).Error
	})
}

func vendorResponse(v *models.Vendor) *types.VendorResponse {
	return &types.VendorResponse{
		ID:           v.ID,
		BusinessName: v.BusinessName,
		Email:        v.Email,
		Phone:        v.Phone,
		Description:  v.Description,
		LogoURL:      v.LogoURL,
	}
}
