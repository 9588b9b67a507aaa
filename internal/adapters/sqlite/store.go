package sqlite

import (
	"context"

	"github.com/fr0stylo/partnerhub/internal/app/ports"
	"github.com/fr0stylo/partnerhub/internal/db/queries"
)

// Store is the sqlite/sqlc-backed implementation of VendorStore.
type Store struct {
	database vendorDatabase
}

// NewStore wraps a database handle. The caller keeps ownership of it.
func NewStore(database vendorDatabase) *Store {
	return &Store{database: database}
}

func mapVendor(row queries.Vendor) ports.Vendor {
	return ports.Vendor{
		ID:                         row.ID,
		Name:                       row.Name,
		Enabled:                    row.Enabled != 0,
		SealedStorefrontCredential: row.StorefrontCredential.String,
		CreatedAt:                  row.CreatedAt,
	}
}

// CreateVendor inserts a vendor.
func (s *Store) CreateVendor(ctx context.Context, input ports.CreateVendorInput) (ports.Vendor, error) {
	row, err := s.database.CreateVendor(ctx, input.Name, input.TokenHash, input.SealedStorefrontCredential, input.Enabled)
	if err != nil {
		return ports.Vendor{}, err
	}
	return mapVendor(row), nil
}

// GetVendorByID fetches a vendor by id.
func (s *Store) GetVendorByID(ctx context.Context, id int64) (ports.Vendor, error) {
	row, err := s.database.GetVendorByID(ctx, id)
	if err != nil {
		return ports.Vendor{}, err
	}
	return mapVendor(row), nil
}

// ListVendors returns all vendors.
func (s *Store) ListVendors(ctx context.Context) ([]ports.Vendor, error) {
	rows, err := s.database.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.Vendor, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapVendor(row))
	}
	return out, nil
}

// UpdateVendorEnabled toggles a vendor.
func (s *Store) UpdateVendorEnabled(ctx context.Context, vendorID int64, enabled bool) error {
	return s.database.UpdateVendorEnabled(ctx, vendorID, enabled)
}

var _ ports.VendorStore = (*Store)(nil)
