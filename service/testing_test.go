package service

import (
	"fmt"
	"testing"

	"prontoshop/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB 每个测试一份内存库，带唯一索引等约束
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.RefreshToken{},
		&models.Vendor{},
		&models.VendorAddress{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Inventory{},
		&models.ProductSubcategory{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Review{},
	)
	require.NoError(t, err)

	return db
}
