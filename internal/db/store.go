package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fr0stylo/partnerhub/internal/db/queries"
)

// CreateVendor inserts a vendor. An empty sealed credential is stored as NULL.
func (c *Database) CreateVendor(ctx context.Context, name, tokenHash, sealedCredential string, enabled bool) (queries.Vendor, error) {
	return c.Queries.CreateVendor(ctx, queries.CreateVendorParams{
		Name:                 name,
		TokenHash:            tokenHash,
		StorefrontCredential: NullString(sealedCredential),
		Enabled:              BoolInt(enabled),
	})
}

// UpdateVendorEnabled toggles whether a vendor token is accepted.
func (c *Database) UpdateVendorEnabled(ctx context.Context, vendorID int64, enabled bool) error {
	return c.Queries.UpdateVendorEnabled(ctx, queries.UpdateVendorEnabledParams{Enabled: BoolInt(enabled), ID: vendorID})
}

// GetCatalogImport fetches one import run owned by vendorID.
func (c *Database) GetCatalogImport(ctx context.Context, vendorID int64, importID string) (queries.CatalogImport, error) {
	return c.Queries.GetCatalogImport(ctx, queries.GetCatalogImportParams{ID: importID, VendorID: vendorID})
}

// ListCatalogImportsByVendor returns the newest import runs first.
func (c *Database) ListCatalogImportsByVendor(ctx context.Context, vendorID int64, limit int64) ([]queries.CatalogImport, error) {
	return c.Queries.ListCatalogImportsByVendor(ctx, queries.ListCatalogImportsByVendorParams{VendorID: vendorID, Limit: limit})
}

// ListProductsByImport returns products written by one import run.
func (c *Database) ListProductsByImport(ctx context.Context, vendorID int64, importID string) ([]queries.ListProductsByImportRow, error) {
	return c.Queries.ListProductsByImport(ctx, queries.ListProductsByImportParams{ImportID: importID, VendorID: vendorID})
}

// WithTx runs a function within a transaction.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(c.Queries.WithTx(tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	return tx.Commit()
}

// NullString maps blank strings to NULL.
func NullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

// BoolInt encodes a bool as sqlite's 0/1.
func BoolInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
