package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// ErrNotConfigured is returned when Endpoint or Token is blank.
var ErrNotConfigured = errors.New("endpoint and token are required")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Supported  []string
}

func (e *APIError) Error() string {
	if len(e.Supported) > 0 {
		return fmt.Sprintf("catalog api: status=%d %s (supported: %s)", e.StatusCode, e.Message, strings.Join(e.Supported, ", "))
	}
	return fmt.Sprintf("catalog api: status=%d %s", e.StatusCode, e.Message)
}

// Upload sends one catalog file as multipart form data.
func (c Client) Upload(ctx context.Context, upload Upload) (Summary, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	filename := strings.TrimSpace(upload.Filename)
	if filename == "" {
		filename = "catalog.csv"
	}
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return Summary{}, fmt.Errorf("build form: %w", err)
	}
	if _, err := part.Write(upload.Body); err != nil {
		return Summary{}, fmt.Errorf("build form: %w", err)
	}
	if source := strings.TrimSpace(upload.Source); source != "" {
		if err := form.WriteField("source", source); err != nil {
			return Summary{}, fmt.Errorf("build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return Summary{}, fmt.Errorf("build form: %w", err)
	}

	path := "/api/v1/catalog/imports"
	if upload.DryRun {
		path += "/preview"
	}
	var summary Summary
	if err := c.do(ctx, http.MethodPost, path, form.FormDataContentType(), &buf, &summary); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// ListImports returns the vendor's recent imports, newest first.
func (c Client) ListImports(ctx context.Context, limit int) ([]ImportRun, error) {
	path := "/api/v1/catalog/imports"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var parsed struct {
		Imports []ImportRun `json:"imports"`
	}
	if err := c.do(ctx, http.MethodGet, path, "", nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Imports, nil
}

// GetImport fetches one import by id.
func (c Client) GetImport(ctx context.Context, importID string) (ImportRun, error) {
	var run ImportRun
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog/imports/"+url.PathEscape(strings.TrimSpace(importID)), "", nil, &run); err != nil {
		return ImportRun{}, err
	}
	return run, nil
}

func (c Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	endpoint := strings.TrimSpace(c.Endpoint)
	token := strings.TrimSpace(c.Token)
	if endpoint == "" || token == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(endpoint, "/")+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func decodeAPIError(resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(payload))}
	var parsed struct {
		Error     string   `json:"error"`
		Message   string   `json:"message"`
		Supported []string `json:"supported"`
	}
	if json.Unmarshal(payload, &parsed) == nil {
		switch {
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		}
		apiErr.Supported = parsed.Supported
	}
	return apiErr
}
