package dao

import (
	"context"
	"fmt"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

func (u *Users) Update(ctx context.Context, userID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.Users.Update error: %w", err)
	}

	return nil
}

// DeleteCascade 删除用户及其地址、refresh token，单事务
func (u *Users) DeleteCascade(ctx context.Context, userID int64) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
}
