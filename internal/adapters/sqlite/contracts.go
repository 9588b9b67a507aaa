package sqlite

import (
	"context"

	"github.com/fr0stylo/partnerhub/internal/db/queries"
)

type vendorDatabase interface {
	CreateVendor(ctx context.Context, name, tokenHash, sealedCredential string, enabled bool) (queries.Vendor, error)
	GetVendorByID(ctx context.Context, id int64) (queries.Vendor, error)
	ListVendors(ctx context.Context) ([]queries.Vendor, error)
	UpdateVendorEnabled(ctx context.Context, vendorID int64, enabled bool) error
}

type catalogDatabase interface {
	GetVendorByTokenHash(ctx context.Context, tokenHash string) (queries.Vendor, error)
	GetCatalogImport(ctx context.Context, vendorID int64, importID string) (queries.CatalogImport, error)
	ListCatalogImportsByVendor(ctx context.Context, vendorID int64, limit int64) ([]queries.CatalogImport, error)
	ListProductsByImport(ctx context.Context, vendorID int64, importID string) ([]queries.ListProductsByImportRow, error)

	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
}
