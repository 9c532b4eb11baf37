/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package connpool

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the pool's leased/idle/pending counters as Prometheus
// gauges. Construction is optional: a Pool built with New works without one,
// Metrics only needs to be wired in when a caller wants observability.
type Metrics struct {
	leased    prometheus.Gauge
	available prometheus.Gauge
	pending   prometheus.Gauge
}

// NewMetrics registers the pool gauges under namespace "httpcore",
// subsystem "connpool" on reg. Pass prometheus.DefaultRegisterer for the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		leased: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "httpcore",
			Subsystem: "connpool",
			Name:      "leased_connections",
			Help:      "Number of connections currently leased out of the pool.",
		}),
		available: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "httpcore",
			Subsystem: "connpool",
			Name:      "idle_connections",
			Help:      "Number of idle connections held by the pool.",
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "httpcore",
			Subsystem: "connpool",
			Name:      "pending_leases",
			Help:      "Number of lease requests waiting for capacity.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.leased, m.available, m.pending)
	}

	return m
}

func (m *Metrics) observe(s Stats) {
	if m == nil {
		return
	}
	m.leased.Set(float64(s.Leased))
	m.available.Set(float64(s.Available))
	m.pending.Set(float64(s.Pending))
}
