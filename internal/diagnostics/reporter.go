// Package diagnostics is the error channel for failures that must not
// propagate: augmentation failures, skipped ticks, unresolved correlations.
package diagnostics

import (
	"log"
	"sync"

	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/metrics"
)

// Reporter receives isolated failures
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(err error)

// Report implements Reporter
func (f ReporterFunc) Report(err error) {
	f(err)
}

// LogReporter writes each failure to the standard logger
type LogReporter struct {
	prefix string
}

// NewLogReporter creates a reporter that logs with the given tag, e.g. "HOOKS"
func NewLogReporter(prefix string) *LogReporter {
	return &LogReporter{prefix: prefix}
}

// Report implements Reporter
func (r *LogReporter) Report(err error) {
	if err == nil {
		return
	}
	log.Printf("[%s] %s: %v", r.prefix, dnderr.GetCode(err), err)
}

// MetricsReporter counts failures by error code
type MetricsReporter struct{}

// NewMetricsReporter creates a reporter backed by the diagnostics counter
func NewMetricsReporter() *MetricsReporter {
	return &MetricsReporter{}
}

// Report implements Reporter
func (r *MetricsReporter) Report(err error) {
	if err == nil {
		return
	}
	metrics.Diagnostics.WithLabelValues(string(dnderr.GetCode(err))).Inc()
}

// Collector keeps every reported failure in memory
type Collector struct {
	mu   sync.Mutex
	errs []error
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Report implements Reporter
func (c *Collector) Report(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

// Errors returns a copy of the collected failures
func (c *Collector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]error, len(c.errs))
	copy(out, c.errs)
	return out
}

// Count returns how many collected failures carry the code
func (c *Collector) Count(code dnderr.Code) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, err := range c.errs {
		if dnderr.Is(err, code) {
			n++
		}
	}
	return n
}

// Multi fans a failure out to several reporters
type Multi []Reporter

// Report implements Reporter
func (m Multi) Report(err error) {
	for _, r := range m {
		if r != nil {
			r.Report(err)
		}
	}
}

// Default returns the reporter used when a component is given none: logs and metrics
func Default(prefix string) Reporter {
	return Multi{NewLogReporter(prefix), NewMetricsReporter()}
}
