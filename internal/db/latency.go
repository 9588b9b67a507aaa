package db

// QueryLatencyStats returns per-query latency over the most recent samples.
func (c *Database) QueryLatencyStats() []QueryLatency {
	if c == nil || c.tracker == nil {
		return nil
	}
	return c.tracker.snapshot()
}
