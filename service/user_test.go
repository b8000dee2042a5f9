package service

import (
	"context"
	"testing"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileAddressUpsert(t *testing.T) {
	db := newTestDB(t)
	s := &UserService{UsersRepo: dao.NewUsers(db), AddressRepo: dao.NewAddresses(db)}
	ctx := context.Background()

	user := &models.User{Email: "u@example.com", Name: "Before"}
	require.NoError(t, db.Create(user).Error)

	req := &types.UpdateProfileRequest{
		Name: "After",
		Address: &types.AddressPayload{
			FullName: "After",
			Line1:    "1 First St",
			City:     "Springfield",
			Country:  "US",
		},
	}
	require.NoError(t, s.UpdateProfile(ctx, user.ID, req))

	// 再次提交同类型地址：覆盖而不是新增
	req.Address.Line1 = "2 Second St"
	require.NoError(t, s.UpdateProfile(ctx, user.ID, req))

	var count int64
	db.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var addr models.Address
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&addr).Error)
	assert.Equal(t, "2 Second St", addr.Line1)
	assert.Equal(t, models.AddressTypeShipping, addr.Type)

	profile, err := s.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", profile.Name)
	require.Len(t, profile.Addresses, 1)
	assert.Equal(t, "2 Second St", profile.Addresses[0].Line1)
}

func TestDeleteAccountCascades(t *testing.T) {
	db := newTestDB(t)
	s := &UserService{UsersRepo: dao.NewUsers(db), AddressRepo: dao.NewAddresses(db)}
	ctx := context.Background()

	user := &models.User{Email: "gone@example.com"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Address{UserID: user.ID, Type: models.AddressTypeShipping, Line1: "x", City: "y", Country: "US"}).Error)

	require.NoError(t, s.DeleteAccount(ctx, user.ID))

	var addrCount int64
	db.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&addrCount)
	assert.Equal(t, int64(0), addrCount)

	_, err := s.GetProfile(ctx, user.ID)
	require.Error(t, err)
}
