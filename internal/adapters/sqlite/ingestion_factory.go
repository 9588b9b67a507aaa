package sqlite

import (
	"github.com/fr0stylo/partnerhub/internal/app/ports"
	"github.com/fr0stylo/partnerhub/internal/db"
)

// CatalogStoreFactory opens sqlite-backed stores for catalog imports.
type CatalogStoreFactory struct {
	dbPath string
	shared *db.Database
}

// NewCatalogStoreFactory creates a factory that opens the database at dbPath
// per store. Opened stores own and close their handle.
func NewCatalogStoreFactory(dbPath string) *CatalogStoreFactory {
	return &CatalogStoreFactory{dbPath: dbPath}
}

// NewSharedCatalogStoreFactory creates a factory backed by an existing shared DB handle.
// Opened stores do not close the shared handle.
func NewSharedCatalogStoreFactory(shared *db.Database) *CatalogStoreFactory {
	return &CatalogStoreFactory{shared: shared}
}

// Open creates a request-scoped catalog store.
func (f *CatalogStoreFactory) Open() (ports.CatalogStore, error) {
	if f.shared != nil {
		return newCatalogStore(f.shared, nil), nil
	}
	database, err := db.New(f.dbPath)
	if err != nil {
		return nil, err
	}
	return newCatalogStore(database, database.Close), nil
}

var _ ports.CatalogStoreFactory = (*CatalogStoreFactory)(nil)
