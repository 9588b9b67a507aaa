package db

import (
	"context"
	"fmt"
	"time"

	"github.com/fr0stylo/partnerhub/internal/db/queries"
)

// Shape is a row count snapshot of the catalog tables.
type Shape struct {
	Vendors   int64
	Imports   int64
	Products  int64
	Inventory int64
	Daily     []queries.ListCatalogImportDailyVolumeRow
}

// CatalogShape counts catalog rows and groups imports per UTC day over the
// last windowDays days, newest day first.
func (c *Database) CatalogShape(ctx context.Context, now time.Time, windowDays int) (Shape, error) {
	var shape Shape
	var err error
	if shape.Vendors, err = c.CountVendors(ctx); err != nil {
		return Shape{}, fmt.Errorf("count vendors: %w", err)
	}
	if shape.Imports, err = c.CountCatalogImports(ctx); err != nil {
		return Shape{}, fmt.Errorf("count imports: %w", err)
	}
	if shape.Products, err = c.CountProducts(ctx); err != nil {
		return Shape{}, fmt.Errorf("count products: %w", err)
	}
	if shape.Inventory, err = c.CountInventory(ctx); err != nil {
		return Shape{}, fmt.Errorf("count inventory: %w", err)
	}
	if windowDays <= 0 {
		return shape, nil
	}

	since := now.UTC().AddDate(0, 0, -windowDays).Format("2006-01-02")
	shape.Daily, err = c.ListCatalogImportDailyVolume(ctx, queries.ListCatalogImportDailyVolumeParams{
		CreatedAt: since,
		Limit:     int64(windowDays) + 1,
	})
	if err != nil {
		return Shape{}, fmt.Errorf("list daily volume: %w", err)
	}
	return shape, nil
}
