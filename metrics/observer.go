package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/tarmac-project/calllog"
)

// Observer records wrapped function calls as host metrics. For every function
// name it maintains three metrics:
//
//	<prefix>_<name>_calls_total        counter, incremented when a call starts
//	<prefix>_<name>_inflight           gauge, raised on start and lowered when the call ends
//	<prefix>_<name>_duration_seconds   histogram of durations for calls that returned
//	<prefix>_<name>_panics_total       counter of calls that ended in a panic
//
// A panicking call still lowers the inflight gauge, but its duration is left
// out of the histogram.
type Observer struct {
	client Client
	prefix string

	mu    sync.Mutex
	calls map[string]*callMetrics
}

type callMetrics struct {
	total    *Counter
	inflight *Gauge
	duration *Histogram
	panics   *Counter
}

// Ensure Observer satisfies calllog.Observer at compile time.
var _ calllog.Observer = (*Observer)(nil)

// NewObserver creates an Observer that emits metrics through client. The
// prefix is sanitised the same way function names are and may be empty.
func NewObserver(client Client, prefix string) (*Observer, error) {
	if client == nil {
		return nil, ErrClientNil
	}

	if prefix != "" {
		prefix = sanitize(prefix)
	}

	return &Observer{
		client: client,
		prefix: prefix,
		calls:  make(map[string]*callMetrics),
	}, nil
}

// Start implements calllog.Observer.
func (o *Observer) Start(name string) {
	m := o.metricsFor(name)
	if m == nil {
		return
	}
	m.total.Inc()
	m.inflight.Inc()
}

// Done implements calllog.Observer.
func (o *Observer) Done(name string, elapsed time.Duration, returned bool) {
	m := o.metricsFor(name)
	if m == nil {
		return
	}
	m.inflight.Dec()
	if !returned {
		m.panics.Inc()
		return
	}
	m.duration.Observe(elapsed.Seconds())
}

// metricsFor returns the cached handles for name, creating them on first use.
// It returns nil when the client rejects a metric name.
func (o *Observer) metricsFor(name string) *callMetrics {
	o.mu.Lock()
	defer o.mu.Unlock()

	if m, ok := o.calls[name]; ok {
		return m
	}

	base := sanitize(name)
	if o.prefix != "" {
		base = o.prefix + "_" + base
	}

	total, err := o.client.NewCounter(base + "_calls_total")
	if err != nil {
		return nil
	}
	inflight, err := o.client.NewGauge(base + "_inflight")
	if err != nil {
		return nil
	}
	duration, err := o.client.NewHistogram(base + "_duration_seconds")
	if err != nil {
		return nil
	}

	panics, err := o.client.NewCounter(base + "_panics_total")
	if err != nil {
		return nil
	}

	m := &callMetrics{total: total, inflight: inflight, duration: duration, panics: panics}
	o.calls[name] = m
	return m
}

// sanitize maps a function name onto the metric name charset. Runs of
// unsupported characters collapse into a single underscore.
func sanitize(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range name {
		valid := r == '_' || r == ':' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !valid {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('_')
		}
		pending = false
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
