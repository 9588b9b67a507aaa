package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/partnerhub/pkg/csvimport"
)

func TestWriteSampleIngestsWithExpectedCounts(t *testing.T) {
	t.Parallel()

	for _, source := range csvimport.SupportedSources() {
		t.Run(string(source), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			stats, err := writeSample(&out, sampleOptions{Source: source, Rows: 300, InvalidRatio: 0.2, Seed: 7})
			require.NoError(t, err)
			require.Equal(t, 300, stats.Valid+stats.Invalid)
			require.Positive(t, stats.Invalid)

			result, err := csvimport.Ingest(out.String(), source)
			require.NoError(t, err)
			require.Equal(t, 300, result.TotalRows)
			require.Len(t, result.Accepted, stats.Valid)
			require.Equal(t, stats.Invalid, result.RejectedCount)

			inventory := 0
			for _, record := range result.Accepted {
				if record.InitialQuantity != nil {
					inventory++
				}
			}
			require.Equal(t, stats.Inventory, inventory)
		})
	}
}

func TestWriteSampleIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	var first, second, other bytes.Buffer
	opts := sampleOptions{Source: csvimport.SourceStorefrontExport, Rows: 50, InvalidRatio: 0.1, Seed: 42}
	_, err := writeSample(&first, opts)
	require.NoError(t, err)
	_, err = writeSample(&second, opts)
	require.NoError(t, err)
	opts.Seed = 43
	_, err = writeSample(&other, opts)
	require.NoError(t, err)

	require.Equal(t, first.String(), second.String())
	require.NotEqual(t, first.String(), other.String())
}

func TestWriteSampleRejectsBadOptions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := writeSample(&out, sampleOptions{Source: "spreadsheet", Rows: 1})
	require.ErrorIs(t, err, csvimport.ErrUnknownSource)

	_, err = writeSample(&out, sampleOptions{Source: csvimport.SourceStorefrontExport, Rows: 1, InvalidRatio: 1.5})
	require.Error(t, err)

	_, err = writeSample(&out, sampleOptions{Source: csvimport.SourceStorefrontExport, Rows: -1})
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSampleReportsWriteErrors(t *testing.T) {
	t.Parallel()

	_, err := writeSample(failingWriter{}, sampleOptions{Source: csvimport.SourceStorefrontExport, Rows: 200, Seed: 1})
	require.ErrorContains(t, err, "disk full")
}

func TestWriteSampleQuotesBodiesThatNeedIt(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := writeSample(&out, sampleOptions{Source: csvimport.SourceStorefrontExport, Rows: 200, Seed: 3})
	require.NoError(t, err)
	require.Contains(t, out.String(), `"<p>Soft, warm and ""cozy""</p>"`)

	result, err := csvimport.Ingest(out.String(), csvimport.SourceStorefrontExport)
	require.NoError(t, err)
	found := false
	for _, record := range result.Accepted {
		if record.Description != nil && *record.Description == `<p>Soft, warm and "cozy"</p>` {
			found = true
			break
		}
	}
	require.True(t, found, "expected the quoted body to survive tokenizing")
}

func TestImportFilesKeepsOrderAndIsolatesFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := make([]string, 0, 5)
	for _, name := range []string{"a.csv", "b.csv", "c.csv", "d.csv"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o600))
		paths = append(paths, path)
	}
	paths = append(paths, filepath.Join(dir, "missing.csv"))

	var inFlight, peak atomic.Int32
	run := func(_ context.Context, path string, body []byte) (importOutcome, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			seen := peak.Load()
			if current <= seen || peak.CompareAndSwap(seen, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)

		if filepath.Base(path) == "b.csv" {
			return importOutcome{}, errors.New("boom")
		}
		return importOutcome{ImportID: string(body), Accepted: len(body)}, nil
	}

	results := importFiles(context.Background(), paths, 2, run)
	require.Len(t, results, 5)
	for i, result := range results {
		require.Equal(t, paths[i], result.Path)
	}
	require.Equal(t, "a.csv", results[0].Outcome.ImportID)
	require.Equal(t, "boom", results[1].Error)
	require.Nil(t, results[1].Outcome)
	require.Equal(t, "c.csv", results[2].Outcome.ImportID)
	require.Equal(t, "d.csv", results[3].Outcome.ImportID)
	require.NotEmpty(t, results[4].Error)
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestLoadFeedConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: http://localhost:8080\ntoken: abc\nrows: 25\ninterval: 5s\n"), 0o600))

	cfg, err := loadFeedConfig(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.Endpoint)
	require.Equal(t, "abc", cfg.Token)
	require.Equal(t, 25, cfg.Rows)
	require.Equal(t, string(csvimport.SourceStorefrontExport), cfg.Source)
	require.Equal(t, 5*time.Second, cfg.every)

	missing := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(missing, []byte("endpoint: http://localhost:8080\n"), 0o600))
	_, err = loadFeedConfig(missing)
	require.Error(t, err)

	_, err = loadFeedConfig("")
	require.Error(t, err)
}

func TestRunFeedStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	err := runFeed(ctx, feedConfig{every: time.Millisecond}, false, func(context.Context, uint64) error {
		if calls.Add(1) == 3 {
			cancel()
		}
		return errors.New("upload failed")
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestRunFeedOnceReturnsUploadError(t *testing.T) {
	t.Parallel()

	err := runFeed(context.Background(), feedConfig{every: time.Hour}, true, func(context.Context, uint64) error {
		return errors.New("upload failed")
	})
	require.EqualError(t, err, "upload failed")
}
