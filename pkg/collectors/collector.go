// Package collectors provides interfaces and implementations for host
// telemetry collection.
package collectors

import "syshealth/pkg/health"

// Collector is the interface that all telemetry collectors must implement.
type Collector interface {
	// Name returns the report section title (e.g., "Processor (CPU) Information").
	Name() string

	// Collect queries the host and streams findings through the recorder.
	Collect(rec *health.Recorder) error
}

// Registry holds all registered collectors in report order.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a new collector registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make([]Collector, 0),
	}
}

// Register adds a collector to the registry. Order of registration is the
// order the report runs in.
func (r *Registry) Register(c Collector) {
	r.collectors = append(r.collectors, c)
}

// Collectors returns all registered collectors.
func (r *Registry) Collectors() []Collector {
	return r.collectors
}
