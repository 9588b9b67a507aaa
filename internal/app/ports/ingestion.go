package ports

import (
	"context"
)

// CatalogStore is the minimal storage contract needed by catalog imports.
type CatalogStore interface {
	GetVendorByTokenHash(ctx context.Context, tokenHash string) (Vendor, error)
	// SaveImport writes the run, its products and their inventory atomically.
	SaveImport(ctx context.Context, run ImportRun, products []ProductInput) error
	GetImport(ctx context.Context, vendorID int64, importID string) (ImportRun, error)
	ListImports(ctx context.Context, vendorID int64, limit int) ([]ImportRun, error)
	ListImportProducts(ctx context.Context, vendorID int64, importID string) ([]ImportedProduct, error)
	Close() error
}

// CatalogStoreFactory creates request-scoped catalog stores.
type CatalogStoreFactory interface {
	Open() (CatalogStore, error)
}

// ImportRun is one persisted catalog upload.
type ImportRun struct {
	ID             string         `json:"id"`
	VendorID       int64          `json:"vendor_id"`
	SourceType     string         `json:"source_type"`
	TotalRows      int            `json:"total_rows"`
	AcceptedCount  int            `json:"accepted"`
	RejectedCount  int            `json:"rejected"`
	InventoryCount int            `json:"inventory_created"`
	Status         string         `json:"status"`
	Rejections     []RowRejection `json:"rejections"`
	CreatedAt      string         `json:"created_at"`
}

// RowRejection records why one upload line was skipped.
type RowRejection struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ProductInput is one accepted catalog record ready for persistence.
type ProductInput struct {
	Name              string
	Description       *string
	Price             float64
	Currency          string
	Kind              string
	Unit              string
	Brand             *string
	ImageURL          *string
	IsAvailable       bool
	SearchEligible    bool
	CheckoutEligible  bool
	AvailabilityState string
	InitialQuantity   *int
}

// ImportedProduct is a stored product as written by one import run.
type ImportedProduct struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	Kind              string  `json:"kind"`
	Unit              string  `json:"unit"`
	IsAvailable       bool    `json:"is_available"`
	AvailabilityState string  `json:"availability_state"`
	// Quantity is nil when the import did not create inventory for the product.
	Quantity *int64 `json:"quantity,omitempty"`
}
