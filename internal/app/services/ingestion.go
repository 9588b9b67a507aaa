package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fr0stylo/partnerhub/internal/app/ports"
	"github.com/fr0stylo/partnerhub/internal/observability"
	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

var (
	// ErrMissingAuthToken indicates missing bearer authorization token.
	ErrMissingAuthToken = errors.New("missing auth token")
	// ErrInvalidAuthToken indicates unknown or disabled vendor token.
	ErrInvalidAuthToken = errors.New("invalid auth token")
	// ErrEmptyUpload indicates an upload with no content.
	ErrEmptyUpload = errors.New("empty upload")
	// ErrUploadTooLarge indicates an upload over the configured size cap.
	ErrUploadTooLarge = errors.New("upload too large")
	// ErrUnknownSource indicates the requested source type has no adapter.
	ErrUnknownSource = errors.New("unknown source type")
	// ErrImportNotFound indicates no import run with that id for the vendor.
	ErrImportNotFound = errors.New("import not found")
)

const (
	bearerPrefix = "Bearer "

	importStatusCompleted = "completed"

	defaultListLimit = 20
	maxListLimit     = 100
)

// ImportErrorKind classifies import failures for transport-specific mapping.
type ImportErrorKind string

const (
	// ImportErrorUnknown is used when error is nil or not classified.
	ImportErrorUnknown ImportErrorKind = "unknown"
	// ImportErrorMissingAuth indicates missing bearer authorization header.
	ImportErrorMissingAuth ImportErrorKind = "missing_auth"
	// ImportErrorInvalidAuth indicates unknown or disabled vendor token.
	ImportErrorInvalidAuth ImportErrorKind = "invalid_auth"
	// ImportErrorEmptyUpload indicates the upload had no content.
	ImportErrorEmptyUpload ImportErrorKind = "empty_upload"
	// ImportErrorTooLarge indicates the upload exceeded the size cap.
	ImportErrorTooLarge ImportErrorKind = "upload_too_large"
	// ImportErrorUnknownSource indicates an unsupported source type.
	ImportErrorUnknownSource ImportErrorKind = "unknown_source"
	// ImportErrorNotFound indicates a missing import run.
	ImportErrorNotFound ImportErrorKind = "not_found"
)

// ImportCommand is transport-agnostic catalog upload input.
type ImportCommand struct {
	AuthorizationHeader string
	SourceType          string
	Body                []byte
	DryRun              bool
}

// ImportSummary is the outcome of one catalog upload.
type ImportSummary struct {
	ImportID         string               `json:"import_id,omitempty"`
	SourceType       string               `json:"source_type"`
	TotalRows        int                  `json:"total_rows"`
	Accepted         int                  `json:"accepted"`
	Rejected         int                  `json:"rejected"`
	InventoryCreated int                  `json:"inventory_created"`
	Rejections       []ports.RowRejection `json:"rejections"`
	// Records is only filled for dry runs so callers can preview the mapping.
	Records []csvimport.Record `json:"records,omitempty"`
	DryRun  bool               `json:"dry_run"`
}

// CatalogImportConfig tunes CatalogImportService.
type CatalogImportConfig struct {
	MaxUploadBytes int64
	DefaultSource  string
	Logger         *slog.Logger
}

// CatalogImportService turns vendor uploads into catalog products.
type CatalogImportService struct {
	storeFactory   ports.CatalogStoreFactory
	maxUploadBytes int64
	defaultSource  string
	log            *slog.Logger
	metrics        catalogImportMetrics
	newImportID    func() string
}

// NewCatalogImportService constructs a catalog import service.
func NewCatalogImportService(storeFactory ports.CatalogStoreFactory, cfg CatalogImportConfig) *CatalogImportService {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &CatalogImportService{
		storeFactory:   storeFactory,
		maxUploadBytes: cfg.MaxUploadBytes,
		defaultSource:  cfg.DefaultSource,
		log:            log,
		metrics:        newCatalogImportMetrics(),
		newImportID:    uuid.NewString,
	}
}

// ClassifyImportError classifies a returned import error.
func ClassifyImportError(err error) ImportErrorKind {
	switch {
	case err == nil:
		return ImportErrorUnknown
	case errors.Is(err, ErrMissingAuthToken):
		return ImportErrorMissingAuth
	case errors.Is(err, ErrInvalidAuthToken):
		return ImportErrorInvalidAuth
	case errors.Is(err, ErrEmptyUpload):
		return ImportErrorEmptyUpload
	case errors.Is(err, ErrUploadTooLarge):
		return ImportErrorTooLarge
	case errors.Is(err, ErrUnknownSource):
		return ImportErrorUnknownSource
	case errors.Is(err, ErrImportNotFound):
		return ImportErrorNotFound
	default:
		return ImportErrorUnknown
	}
}

// Import authenticates the vendor, normalizes the upload and, unless the
// command is a dry run, persists accepted records in one transaction.
func (s *CatalogImportService) Import(ctx context.Context, cmd ImportCommand) (summary ImportSummary, err error) {
	source := csvimport.ParseSourceType(cmd.SourceType)
	if source == "" {
		source = csvimport.ParseSourceType(s.defaultSource)
	}

	ctx, span := observability.StartServiceSpan(ctx, "catalog.import",
		attribute.String("catalog.source", string(source)),
		attribute.Bool("catalog.dry_run", cmd.DryRun),
	)
	defer func() {
		s.metrics.recordRequest(ctx, string(source), ClassifyImportError(err), err == nil)
		span.RecordError(err)
		span.End()
	}()

	store, vendor, err := s.authenticate(ctx, cmd.AuthorizationHeader)
	if err != nil {
		return ImportSummary{}, err
	}
	defer func() {
		_ = store.Close()
	}()
	ctx = observability.WithVendor(ctx, vendor.ID)

	if _, err := csvimport.Resolve(source); err != nil {
		return ImportSummary{}, fmt.Errorf("%w: %w", ErrUnknownSource, err)
	}
	if s.maxUploadBytes > 0 && int64(len(cmd.Body)) > s.maxUploadBytes {
		return ImportSummary{}, ErrUploadTooLarge
	}
	if strings.TrimSpace(string(cmd.Body)) == "" {
		return ImportSummary{}, ErrEmptyUpload
	}

	result, err := csvimport.Ingest(string(cmd.Body), source)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("%w: %w", ErrUnknownSource, err)
	}

	summary = summarize(result, cmd.DryRun)
	span.SetAttributes(
		attribute.Int("catalog.rows.total", summary.TotalRows),
		attribute.Int("catalog.rows.accepted", summary.Accepted),
		attribute.Int("catalog.rows.rejected", summary.Rejected),
	)

	if !cmd.DryRun {
		run := ports.ImportRun{
			ID:             s.newImportID(),
			VendorID:       vendor.ID,
			SourceType:     string(result.Source),
			TotalRows:      summary.TotalRows,
			AcceptedCount:  summary.Accepted,
			RejectedCount:  summary.Rejected,
			InventoryCount: summary.InventoryCreated,
			Status:         importStatusCompleted,
			Rejections:     summary.Rejections,
		}
		if err := store.SaveImport(ctx, run, productInputs(result.Accepted)); err != nil {
			return ImportSummary{}, fmt.Errorf("save import: %w", err)
		}
		summary.ImportID = run.ID
	}

	s.metrics.recordRows(ctx, string(result.Source), summary.Accepted, summary.Rejected)
	s.log.InfoContext(ctx, "catalog import processed",
		"import_id", summary.ImportID,
		"source", summary.SourceType,
		"total_rows", summary.TotalRows,
		"accepted", summary.Accepted,
		"rejected", summary.Rejected,
		"inventory_created", summary.InventoryCreated,
		"dry_run", summary.DryRun,
	)
	return summary, nil
}

// GetImport returns one of the calling vendor's import runs.
func (s *CatalogImportService) GetImport(ctx context.Context, authorizationHeader, importID string) (ports.ImportRun, error) {
	store, vendor, err := s.authenticate(ctx, authorizationHeader)
	if err != nil {
		return ports.ImportRun{}, err
	}
	defer func() {
		_ = store.Close()
	}()

	importID = strings.TrimSpace(importID)
	if importID == "" {
		return ports.ImportRun{}, ErrImportNotFound
	}
	run, err := store.GetImport(observability.WithVendor(ctx, vendor.ID), vendor.ID, importID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.ImportRun{}, ErrImportNotFound
		}
		return ports.ImportRun{}, err
	}
	return run, nil
}

// ListImportProducts returns the products one of the calling vendor's import
// runs wrote.
func (s *CatalogImportService) ListImportProducts(ctx context.Context, authorizationHeader, importID string) ([]ports.ImportedProduct, error) {
	store, vendor, err := s.authenticate(ctx, authorizationHeader)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = store.Close()
	}()

	importID = strings.TrimSpace(importID)
	if importID == "" {
		return nil, ErrImportNotFound
	}
	ctx = observability.WithVendor(ctx, vendor.ID)
	if _, err := store.GetImport(ctx, vendor.ID, importID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImportNotFound
		}
		return nil, err
	}
	products, err := store.ListImportProducts(ctx, vendor.ID, importID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []ports.ImportedProduct{}
	}
	return products, nil
}

// ListImports returns the calling vendor's most recent import runs.
func (s *CatalogImportService) ListImports(ctx context.Context, authorizationHeader string, limit int) ([]ports.ImportRun, error) {
	store, vendor, err := s.authenticate(ctx, authorizationHeader)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = store.Close()
	}()

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	runs, err := store.ListImports(observability.WithVendor(ctx, vendor.ID), vendor.ID, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []ports.ImportRun{}
	}
	return runs, nil
}

func (s *CatalogImportService) authenticate(ctx context.Context, authorizationHeader string) (ports.CatalogStore, ports.Vendor, error) {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return nil, ports.Vendor{}, ErrMissingAuthToken
	}

	store, vendor, err := s.lookupVendor(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.Vendor{}, ErrInvalidAuthToken
		}
		return nil, ports.Vendor{}, err
	}
	return store, vendor, nil
}

func (s *CatalogImportService) lookupVendor(ctx context.Context, token string) (ports.CatalogStore, ports.Vendor, error) {
	store, err := s.storeFactory.Open()
	if err != nil {
		return nil, ports.Vendor{}, err
	}

	vendor, err := store.GetVendorByTokenHash(ctx, HashToken(token))
	if err != nil {
		_ = store.Close()
		return nil, ports.Vendor{}, err
	}
	if !vendor.Enabled {
		_ = store.Close()
		return nil, ports.Vendor{}, sql.ErrNoRows
	}

	return store, vendor, nil
}

func summarize(result csvimport.Result, dryRun bool) ImportSummary {
	summary := ImportSummary{
		SourceType: string(result.Source),
		TotalRows:  result.TotalRows,
		Accepted:   len(result.Accepted),
		Rejected:   result.RejectedCount,
		Rejections: make([]ports.RowRejection, 0, len(result.Rejections)),
		DryRun:     dryRun,
	}
	for _, rejection := range result.Rejections {
		summary.Rejections = append(summary.Rejections, ports.RowRejection{Line: rejection.Line, Reason: rejection.Reason})
	}
	for _, record := range result.Accepted {
		if record.InitialQuantity != nil {
			summary.InventoryCreated++
		}
	}
	if dryRun {
		summary.Records = result.Accepted
	}
	return summary
}

func productInputs(records []csvimport.Record) []ports.ProductInput {
	products := make([]ports.ProductInput, 0, len(records))
	for _, record := range records {
		products = append(products, ports.ProductInput{
			Name:              record.Name,
			Description:       record.Description,
			Price:             record.Price,
			Currency:          record.Currency,
			Kind:              string(record.Kind),
			Unit:              record.Unit,
			Brand:             record.Brand,
			ImageURL:          record.ImageURL,
			IsAvailable:       record.IsAvailable,
			SearchEligible:    record.SearchEligible,
			CheckoutEligible:  record.CheckoutEligible,
			AvailabilityState: record.AvailabilityState,
			InitialQuantity:   record.InitialQuantity,
		})
	}
	return products
}

// HashToken returns the stored form of a vendor API token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(token)))
	return hex.EncodeToString(sum[:])
}

func bearerToken(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, bearerPrefix) {
		return "", errors.New("missing bearer prefix")
	}
	token := strings.TrimSpace(strings.TrimPrefix(trimmed, bearerPrefix))
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}
