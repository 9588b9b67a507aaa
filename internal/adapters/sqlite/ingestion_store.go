package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fr0stylo/partnerhub/internal/app/ports"
	"github.com/fr0stylo/partnerhub/internal/db"
	"github.com/fr0stylo/partnerhub/internal/db/queries"
)

type catalogStore struct {
	db      catalogDatabase
	closeFn func() error
}

func newCatalogStore(database catalogDatabase, closeFn func() error) *catalogStore {
	return &catalogStore{db: database, closeFn: closeFn}
}

func (s *catalogStore) GetVendorByTokenHash(ctx context.Context, tokenHash string) (ports.Vendor, error) {
	vendor, err := s.db.GetVendorByTokenHash(ctx, tokenHash)
	if err != nil {
		return ports.Vendor{}, err
	}
	return mapVendor(vendor), nil
}

// SaveImport writes the run row first so products can reference it, then each
// product and, when the record carried a quantity, its inventory row.
func (s *catalogStore) SaveImport(ctx context.Context, run ports.ImportRun, products []ports.ProductInput) error {
	rejections := run.Rejections
	if rejections == nil {
		rejections = []ports.RowRejection{}
	}
	rejectionsJSON, err := json.Marshal(rejections)
	if err != nil {
		return fmt.Errorf("encode rejections: %w", err)
	}

	return s.db.WithTx(ctx, func(q *queries.Queries) error {
		if err := q.CreateCatalogImport(ctx, queries.CreateCatalogImportParams{
			ID:             run.ID,
			VendorID:       run.VendorID,
			SourceType:     run.SourceType,
			TotalRows:      int64(run.TotalRows),
			AcceptedCount:  int64(run.AcceptedCount),
			RejectedCount:  int64(run.RejectedCount),
			InventoryCount: int64(run.InventoryCount),
			RejectionsJson: string(rejectionsJSON),
			Status:         run.Status,
		}); err != nil {
			return fmt.Errorf("insert import run: %w", err)
		}

		for i, product := range products {
			productID, err := q.CreateProduct(ctx, queries.CreateProductParams{
				VendorID:          run.VendorID,
				ImportID:          run.ID,
				Name:              product.Name,
				Description:       optionalString(product.Description),
				Price:             product.Price,
				Currency:          product.Currency,
				Kind:              product.Kind,
				Unit:              product.Unit,
				Brand:             optionalString(product.Brand),
				ImageUrl:          optionalString(product.ImageURL),
				IsAvailable:       db.BoolInt(product.IsAvailable),
				SearchEligible:    db.BoolInt(product.SearchEligible),
				CheckoutEligible:  db.BoolInt(product.CheckoutEligible),
				AvailabilityState: product.AvailabilityState,
			})
			if err != nil {
				return fmt.Errorf("insert product %d: %w", i, err)
			}
			if product.InitialQuantity == nil {
				continue
			}
			if err := q.CreateInventory(ctx, queries.CreateInventoryParams{
				ProductID: productID,
				Quantity:  int64(*product.InitialQuantity),
			}); err != nil {
				return fmt.Errorf("insert inventory for product %d: %w", i, err)
			}
		}
		return nil
	})
}

func (s *catalogStore) GetImport(ctx context.Context, vendorID int64, importID string) (ports.ImportRun, error) {
	row, err := s.db.GetCatalogImport(ctx, vendorID, importID)
	if err != nil {
		return ports.ImportRun{}, err
	}
	return mapImportRun(row)
}

func (s *catalogStore) ListImports(ctx context.Context, vendorID int64, limit int) ([]ports.ImportRun, error) {
	rows, err := s.db.ListCatalogImportsByVendor(ctx, vendorID, int64(limit))
	if err != nil {
		return nil, err
	}
	out := make([]ports.ImportRun, 0, len(rows))
	for _, row := range rows {
		run, err := mapImportRun(row)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, nil
}

func (s *catalogStore) ListImportProducts(ctx context.Context, vendorID int64, importID string) ([]ports.ImportedProduct, error) {
	rows, err := s.db.ListProductsByImport(ctx, vendorID, importID)
	if err != nil {
		return nil, err
	}
	out := make([]ports.ImportedProduct, 0, len(rows))
	for _, row := range rows {
		product := ports.ImportedProduct{
			ID:                row.ID,
			Name:              row.Name,
			Price:             row.Price,
			Currency:          row.Currency,
			Kind:              row.Kind,
			Unit:              row.Unit,
			IsAvailable:       row.IsAvailable != 0,
			AvailabilityState: row.AvailabilityState,
		}
		if row.Quantity.Valid {
			quantity := row.Quantity.Int64
			product.Quantity = &quantity
		}
		out = append(out, product)
	}
	return out, nil
}

func (s *catalogStore) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

func mapImportRun(row queries.CatalogImport) (ports.ImportRun, error) {
	run := ports.ImportRun{
		ID:             row.ID,
		VendorID:       row.VendorID,
		SourceType:     row.SourceType,
		TotalRows:      int(row.TotalRows),
		AcceptedCount:  int(row.AcceptedCount),
		RejectedCount:  int(row.RejectedCount),
		InventoryCount: int(row.InventoryCount),
		Status:         row.Status,
		Rejections:     []ports.RowRejection{},
		CreatedAt:      row.CreatedAt,
	}
	if row.RejectionsJson != "" {
		if err := json.Unmarshal([]byte(row.RejectionsJson), &run.Rejections); err != nil {
			return ports.ImportRun{}, fmt.Errorf("decode rejections for import %s: %w", row.ID, err)
		}
	}
	return run, nil
}

func optionalString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return db.NullString(*value)
}

var _ ports.CatalogStore = (*catalogStore)(nil)
