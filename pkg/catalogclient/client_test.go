package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadSendsMultipartForm(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/catalog/imports" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header: %s", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("read form file: %v", err)
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		if string(body) != "Title,Variant Price\nLamp,3\n" || header.Filename != "lamps.csv" {
			t.Errorf("unexpected upload %q (%s)", body, header.Filename)
		}
		if got := r.FormValue("source"); got != "storefront_export" {
			t.Errorf("unexpected source: %s", got)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"import_id": "imp-1", "source_type": "storefront_export", "total_rows": 1, "accepted": 1})
	}))
	defer srv.Close()

	client := Client{Endpoint: srv.URL + "/", Token: "tok"}
	summary, err := client.Upload(context.Background(), Upload{
		Source:   "storefront_export",
		Filename: "lamps.csv",
		Body:     []byte("Title,Variant Price\nLamp,3\n"),
	})
	if err != nil {
		t.Fatalf("Upload error = %v", err)
	}
	if summary.ImportID != "imp-1" || summary.Accepted != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestUploadDryRunUsesPreviewRoute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/catalog/imports/preview" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"dry_run": true})
	}))
	defer srv.Close()

	summary, err := Client{Endpoint: srv.URL, Token: "tok"}.Upload(context.Background(), Upload{Body: []byte("x"), DryRun: true})
	if err != nil {
		t.Fatalf("Upload error = %v", err)
	}
	if !summary.DryRun {
		t.Fatal("expected dry run summary")
	}
}

func TestAPIErrorCarriesSupportedSources(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":     "unknown source type \"feed\"",
			"supported": []string{"storefront_export", "partnerhub_template"},
		})
	}))
	defer srv.Close()

	_, err := Client{Endpoint: srv.URL, Token: "tok"}.Upload(context.Background(), Upload{Source: "feed", Body: []byte("x")})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || len(apiErr.Supported) != 2 {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestListImportsPassesLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("unexpected limit: %s", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"imports": []map[string]any{{"id": "imp-1"}, {"id": "imp-0"}}})
	}))
	defer srv.Close()

	runs, err := Client{Endpoint: srv.URL, Token: "tok"}.ListImports(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListImports error = %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "imp-1" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestClientRequiresEndpointAndToken(t *testing.T) {
	t.Parallel()

	_, err := Client{Endpoint: "http://localhost"}.GetImport(context.Background(), "imp-1")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
