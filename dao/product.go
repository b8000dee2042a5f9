package dao

import (
	"context"

	"prontoshop/models"

	"gorm.io/gorm"
)

type Products struct {
	Repo[models.Product]
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{
		Repo: NewRepo[models.Product](db),
	}
}

// ListByCursor 游标分页，多查一条判断 hasMore
func (p *Products) ListByCursor(ctx context.Context, cursor int64, limit int) ([]*models.Product, error) {
	var products []*models.Product
	query := p.Db.WithContext(ctx)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id desc").Limit(limit).Find(&products).Error
	return products, err
}

func (p *Products) FindInventory(ctx context.Context, productID int64) (*models.Inventory, error) {
	var inv models.Inventory
	err := p.Db.WithContext(ctx).Where("product_id = ?", productID).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (p *Products) SaveInventory(ctx context.Context, inv *models.Inventory) error {
	return p.Db.WithContext(ctx).Save(inv).Error
}

// ReplaceSubcategories 重建商品与子分类的关联
func (p *Products) ReplaceSubcategories(ctx context.Context, productID int64, subcategoryIDs []int64) error {
	return p.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductSubcategory{}).Error; err != nil {
			return err
		}
		for _, sid := range subcategoryIDs {
			link := &models.ProductSubcategory{ProductID: productID, SubcategoryID: sid}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Products) SubcategoryIds(ctx context.Context, productID int64) ([]int64, error) {
	var ids []int64
	err := p.Db.WithContext(ctx).Model(&models.ProductSubcategory{}).
		Where("product_id = ?", productID).
		Pluck("subcategory_id", &ids).Error
	return ids, err
}
