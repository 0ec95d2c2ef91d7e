package postgres

import (
	"context"
	"fmt"
	"time"

	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/adapters/out/postgres/productrepo"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed populates empty customer and product tables with demo data so a
// fresh environment is immediately usable. Non-empty tables are left
// untouched, which makes seeding safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedCustomers(ctx, db); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if err := seedProducts(ctx, db); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	return nil
}

func seedCustomers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&customerrepo.CustomerDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	customers := []customerrepo.CustomerDTO{
		{Name: "Alice Johnson", Email: "alice.johnson@example.com", CreatedAt: now},
		{Name: "Bob Smith", Email: "bob.smith@example.com", CreatedAt: now},
		{Name: "Carol Davis", Email: "carol.davis@example.com", CreatedAt: now},
	}

	return db.WithContext(ctx).Create(&customers).Error
}

func seedProducts(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&productrepo.ProductDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []productrepo.ProductDTO{
		{Sku: "LAPTOP-001", Name: "Laptop Pro 15", Price: decimal.NewFromFloat(1499.99), IsActive: true},
		{Sku: "MOUSE-001", Name: "Wireless Mouse", Price: decimal.NewFromFloat(29.90), IsActive: true},
		{Sku: "KEYB-001", Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(89.50), IsActive: true},
		{Sku: "MONITOR-27", Name: "27 inch 4K Monitor", Price: decimal.NewFromFloat(399.00), IsActive: true},
		{Sku: "DOCK-USB4", Name: "USB4 Docking Station", Price: decimal.NewFromFloat(249.00), IsActive: false},
	}

	return db.WithContext(ctx).Create(&products).Error
}
