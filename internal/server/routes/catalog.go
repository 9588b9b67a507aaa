package routes

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	appservices "github.com/fr0stylo/partnerhub/internal/app/services"
	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

const (
	uploadField  = "file"
	sourceField  = "source"
	dryRunField  = "dry_run"
	limitField   = "limit"
	importIDPath = "id"

	// Room for multipart boundaries and part headers on top of the file cap.
	multipartOverheadBytes = 64 << 10
)

var errMissingUploadFile = errors.New("multipart upload needs a \"file\" part")

type errorResponse struct {
	Error     string                 `json:"error"`
	Supported []csvimport.SourceType `json:"supported,omitempty"`
}

// CatalogRoutes registers the vendor catalog upload API.
type CatalogRoutes struct {
	imports        *appservices.CatalogImportService
	maxUploadBytes int64
}

// NewCatalogRoutes constructs catalog routes. maxUploadBytes <= 0 disables the
// read cap.
func NewCatalogRoutes(imports *appservices.CatalogImportService, maxUploadBytes int64) *CatalogRoutes {
	return &CatalogRoutes{imports: imports, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes registers catalog endpoints.
func (r *CatalogRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/api/v1/catalog")

	api.GET("/sources", r.handleSources)
	api.GET("/template", r.handleTemplate)
	api.POST("/imports", r.handleImport, r.bodyLimit()...)
	api.POST("/imports/preview", r.handlePreview, r.bodyLimit()...)
	api.GET("/imports", r.handleListImports)
	api.GET("/imports/:id", r.handleGetImport)
	api.GET("/imports/:id/products", r.handleImportProducts)
}

// bodyLimit rejects bodies far past the upload cap before any handler runs.
// Bodies between the cap and the limit reach the service, which answers
// auth errors first.
func (r *CatalogRoutes) bodyLimit() []echo.MiddlewareFunc {
	if r.maxUploadBytes <= 0 {
		return nil
	}
	return []echo.MiddlewareFunc{middleware.BodyLimit(strconv.FormatInt(r.maxUploadBytes+multipartOverheadBytes, 10))}
}

func (r *CatalogRoutes) handleSources(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"sources":          csvimport.SupportedSources(),
		"template_headers": csvimport.TemplateHeaders,
	})
}

func (r *CatalogRoutes) handleTemplate(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="partnerhub_template.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(strings.Join(csvimport.TemplateHeaders, ",")+"\n"))
}

func (r *CatalogRoutes) handleImport(c echo.Context) error {
	dryRun, _ := strconv.ParseBool(strings.TrimSpace(c.QueryParam(dryRunField)))
	return r.runImport(c, dryRun)
}

func (r *CatalogRoutes) handlePreview(c echo.Context) error {
	return r.runImport(c, true)
}

func (r *CatalogRoutes) runImport(c echo.Context, dryRun bool) error {
	body, formSource, err := r.readUpload(c)
	if err != nil {
		if errors.Is(err, appservices.ErrUploadTooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	source := strings.TrimSpace(c.QueryParam(sourceField))
	if source == "" {
		source = formSource
	}

	summary, err := r.imports.Import(c.Request().Context(), appservices.ImportCommand{
		AuthorizationHeader: c.Request().Header.Get(echo.HeaderAuthorization),
		SourceType:          source,
		Body:                body,
		DryRun:              dryRun,
	})
	if err != nil {
		return writeImportHTTPError(c, err)
	}

	status := http.StatusCreated
	if summary.DryRun {
		status = http.StatusOK
	}
	return c.JSON(status, summary)
}

func (r *CatalogRoutes) handleListImports(c echo.Context) error {
	limit, _ := strconv.Atoi(strings.TrimSpace(c.QueryParam(limitField)))
	runs, err := r.imports.ListImports(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization), limit)
	if err != nil {
		return writeImportHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"imports": runs})
}

func (r *CatalogRoutes) handleGetImport(c echo.Context) error {
	run, err := r.imports.GetImport(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization), c.Param(importIDPath))
	if err != nil {
		return writeImportHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

func (r *CatalogRoutes) handleImportProducts(c echo.Context) error {
	products, err := r.imports.ListImportProducts(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization), c.Param(importIDPath))
	if err != nil {
		return writeImportHTTPError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"products": products})
}

// readUpload returns the upload bytes, reading at most one byte past the cap
// so the service can tell an oversized upload from one exactly at the limit.
// Multipart bodies also yield the form's source field.
func (r *CatalogRoutes) readUpload(c echo.Context) ([]byte, string, error) {
	req := c.Request()
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		body, err := r.readCapped(req.Body)
		return body, "", err
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return nil, "", appservices.ErrUploadTooLarge
		}
		return nil, "", errMissingUploadFile
	}
	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = file.Close()
	}()

	body, err := r.readCapped(file)
	return body, strings.TrimSpace(c.FormValue(sourceField)), err
}

func (r *CatalogRoutes) readCapped(src io.Reader) ([]byte, error) {
	if r.maxUploadBytes <= 0 {
		return io.ReadAll(src)
	}
	return io.ReadAll(io.LimitReader(src, r.maxUploadBytes+1))
}

func writeImportHTTPError(c echo.Context, err error) error {
	switch appservices.ClassifyImportError(err) {
	case appservices.ImportErrorMissingAuth:
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: appservices.ErrMissingAuthToken.Error()})
	case appservices.ImportErrorInvalidAuth:
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: appservices.ErrInvalidAuthToken.Error()})
	case appservices.ImportErrorEmptyUpload:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: appservices.ErrEmptyUpload.Error()})
	case appservices.ImportErrorTooLarge:
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: appservices.ErrUploadTooLarge.Error()})
	case appservices.ImportErrorNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{Error: appservices.ErrImportNotFound.Error()})
	case appservices.ImportErrorUnknownSource:
		resp := errorResponse{Error: appservices.ErrUnknownSource.Error(), Supported: csvimport.SupportedSources()}
		var unknown *csvimport.UnknownSourceError
		if errors.As(err, &unknown) {
			resp.Error = unknown.Error()
		}
		return c.JSON(http.StatusBadRequest, resp)
	case appservices.ImportErrorUnknown:
		return err
	}
	return err
}
