package ports

import (
	"context"
)

// VendorStore defines vendor administration used by the operator CLI.
type VendorStore interface {
	CreateVendor(ctx context.Context, input CreateVendorInput) (Vendor, error)
	GetVendorByID(ctx context.Context, id int64) (Vendor, error)
	ListVendors(ctx context.Context) ([]Vendor, error)
	UpdateVendorEnabled(ctx context.Context, vendorID int64, enabled bool) error
}

// Vendor is an app-level catalog vendor.
type Vendor struct {
	ID      int64
	Name    string
	Enabled bool
	// SealedStorefrontCredential is the encrypted credential, empty when none was given.
	SealedStorefrontCredential string
	CreatedAt                  string
}

// CreateVendorInput represents vendor creation fields.
type CreateVendorInput struct {
	Name                       string
	TokenHash                  string
	SealedStorefrontCredential string
	Enabled                    bool
}
