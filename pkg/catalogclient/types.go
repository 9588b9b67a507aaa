package catalogclient

import (
	"net/http"
	"time"

	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

// Client talks to the partnerhub catalog API with one vendor token.
type Client struct {
	Endpoint   string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Upload is one catalog file to send.
type Upload struct {
	Source   string
	Filename string
	Body     []byte
	DryRun   bool
}

// Rejection is one skipped upload line.
type Rejection struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Summary mirrors the server's import response.
type Summary struct {
	ImportID         string             `json:"import_id,omitempty"`
	SourceType       string             `json:"source_type"`
	TotalRows        int                `json:"total_rows"`
	Accepted         int                `json:"accepted"`
	Rejected         int                `json:"rejected"`
	InventoryCreated int                `json:"inventory_created"`
	Rejections       []Rejection        `json:"rejections"`
	Records          []csvimport.Record `json:"records,omitempty"`
	DryRun           bool               `json:"dry_run"`
}

// ImportRun is a persisted import as listed by the server.
type ImportRun struct {
	ID               string      `json:"id"`
	SourceType       string      `json:"source_type"`
	TotalRows        int         `json:"total_rows"`
	Accepted         int         `json:"accepted"`
	Rejected         int         `json:"rejected"`
	InventoryCreated int         `json:"inventory_created"`
	Status           string      `json:"status"`
	Rejections       []Rejection `json:"rejections"`
	CreatedAt        string      `json:"created_at"`
}
