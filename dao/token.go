package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type RefreshTokens struct {
	Repo[models.RefreshToken]
}

func NewRefreshTokens(db *gorm.DB) *RefreshTokens {
	return &RefreshTokens{
		Repo: NewRepo[models.RefreshToken](db),
	}
}

func (t *RefreshTokens) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return t.Repo.FindByWhere(ctx, "token = ?", token)
}

func (t *RefreshTokens) DeleteByToken(ctx context.Context, token string) error {
	return t.Db.WithContext(ctx).Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}
