package referenceframe

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultDiagnosticInterval is the minimum interval between repeated
// diagnostics from the same site.
const DefaultDiagnosticInterval = 2 * time.Second

// DiagnosticLimiter rate limits diagnostics per site identifier so that a
// resolver running at a high cycle rate does not flood its logger. It is safe
// for concurrent use.
type DiagnosticLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	clock    clock.Clock
	lastEmit map[string]time.Time
}

// NewDiagnosticLimiter returns a limiter allowing one diagnostic per site per
// interval. A nil clock uses the wall clock.
func NewDiagnosticLimiter(interval time.Duration, clk clock.Clock) *DiagnosticLimiter {
	if clk == nil {
		clk = clock.New()
	}
	return &DiagnosticLimiter{
		interval: interval,
		clock:    clk,
		lastEmit: map[string]time.Time{},
	}
}

// Allow reports whether a diagnostic from the given site may be emitted now,
// and if so records the emission.
func (dl *DiagnosticLimiter) Allow(site string) bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	now := dl.clock.Now()
	if last, ok := dl.lastEmit[site]; ok && now.Sub(last) < dl.interval {
		return false
	}
	dl.lastEmit[site] = now
	return true
}
