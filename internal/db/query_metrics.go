package db

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fr0stylo/partnerhub/internal/db/queries"
	"github.com/fr0stylo/partnerhub/internal/observability"
)

const maxSamplesPerQuery = 512

// QueryLatency summarizes recent samples for one named sqlc query.
type QueryLatency struct {
	Name  string
	Count int
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

type queryLatencyTracker struct {
	mu        sync.Mutex
	samples   map[string][]time.Duration
	histogram metric.Float64Histogram
}

func newQueryLatencyTracker() *queryLatencyTracker {
	histogram, _ := otel.Meter("github.com/fr0stylo/partnerhub/internal/db").Float64Histogram(
		"partnerhub.db.query.duration",
		metric.WithUnit("ms"),
	)
	return &queryLatencyTracker{
		samples:   make(map[string][]time.Duration),
		histogram: histogram,
	}
}

func (t *queryLatencyTracker) observe(ctx context.Context, name string, duration time.Duration) {
	if t == nil {
		return
	}
	if t.histogram != nil {
		t.histogram.Record(ctx, float64(duration.Microseconds())/1000,
			metric.WithAttributes(attribute.String("db.query_name", name)))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	window := append(t.samples[name], duration)
	if len(window) > maxSamplesPerQuery {
		window = window[len(window)-maxSamplesPerQuery:]
	}
	t.samples[name] = window
}

// snapshot returns stats sorted slowest p95 first.
func (t *queryLatencyTracker) snapshot() []QueryLatency {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stats := make([]QueryLatency, 0, len(t.samples))
	for name, durations := range t.samples {
		if len(durations) == 0 {
			continue
		}
		sorted := make([]time.Duration, len(durations))
		copy(sorted, durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		stats = append(stats, QueryLatency{
			Name:  name,
			Count: len(sorted),
			P50:   sorted[(len(sorted)-1)/2],
			P95:   sorted[int(float64(len(sorted)-1)*0.95)],
			Max:   sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].P95 == stats[j].P95 {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].P95 > stats[j].P95
	})

	return stats
}

type instrumentedDBTX struct {
	inner   queries.DBTX
	tracker *queryLatencyTracker
}

func newInstrumentedDBTX(inner queries.DBTX, tracker *queryLatencyTracker) queries.DBTX {
	if tracker == nil {
		return inner
	}
	return &instrumentedDBTX{inner: inner, tracker: tracker}
}

func (d *instrumentedDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, "exec")
	defer span.End()

	start := time.Now()
	result, err := d.inner.ExecContext(ctx, query, args...)
	d.tracker.observe(ctx, name, time.Since(start))
	span.RecordError(err)
	return result, err
}

func (d *instrumentedDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, "prepare")
	defer span.End()

	start := time.Now()
	stmt, err := d.inner.PrepareContext(ctx, query)
	d.tracker.observe(ctx, name, time.Since(start))
	span.RecordError(err)
	return stmt, err
}

func (d *instrumentedDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, "query")
	defer span.End()

	start := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	d.tracker.observe(ctx, name, time.Since(start))
	span.RecordError(err)
	return rows, err
}

func (d *instrumentedDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, "query_row")
	defer span.End()

	start := time.Now()
	row := d.inner.QueryRowContext(ctx, query, args...)
	d.tracker.observe(ctx, name, time.Since(start))
	return row
}

// queryName extracts the sqlc query name from its "-- name: X :kind" header.
func queryName(query string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	fields := strings.Fields(first)
	if len(fields) < 3 || fields[0] != "--" || fields[1] != "name:" {
		return "unknown"
	}
	return fields[2]
}
