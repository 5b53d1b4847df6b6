package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps coarse request counters. Plain atomics; there is no
// metrics backend in the deployment, the snapshot is scraped over HTTP.
type Collector struct {
	requests        uint64
	clientErrors    uint64
	serverErrors    uint64
	unauthorized    uint64
	rateLimited     uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.requests, 1)
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
	switch {
	case status == 401 || status == 403:
		atomic.AddUint64(&c.unauthorized, 1)
		atomic.AddUint64(&c.clientErrors, 1)
	case status == 429:
		atomic.AddUint64(&c.rateLimited, 1)
		atomic.AddUint64(&c.clientErrors, 1)
	case status >= 500:
		atomic.AddUint64(&c.serverErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	requests := atomic.LoadUint64(&c.requests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if requests > 0 {
		avg = float64(totalMs) / float64(requests)
	}
	return map[string]any{
		"requestsTotal":     requests,
		"clientErrorsTotal": atomic.LoadUint64(&c.clientErrors),
		"serverErrorsTotal": atomic.LoadUint64(&c.serverErrors),
		"unauthorizedTotal": atomic.LoadUint64(&c.unauthorized),
		"rateLimitedTotal":  atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":     avg,
	}
}
