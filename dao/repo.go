package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 泛型仓储，按实体参数化，供各 DAO 嵌入，
// 避免 category/subcategory/product/vendor 各写一份同样的 CRUD。
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAllByWhere(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) UpdateById(ctx context.Context, id int64, data map[string]any) (int64, error) {
	var model T
	result := r.Db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(data)
	return result.RowsAffected, result.Error
}

func (r Repo[T]) DeleteById(ctx context.Context, id int64) error {
	var model T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&model).Error
}

func (r Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
