package metric

import (
	"fmt"
	"sort"
)

// Registry maps metric names to implementations. It is built once at
// startup by explicit enumeration; adding a metric means adding one
// implementation and one line in Builtin.
type Registry struct {
	metrics map[string]Metric
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]Metric)}
}

// Builtin returns the registry of all shipped metrics.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, m := range []Metric{
		License{},
		SizeScore{},
		RampUpTime{},
		BusFactor{},
		PerformanceClaims{},
		DatasetAndCode{},
		DatasetQuality{},
		CodeQuality{},
	} {
		// Names are unique by construction; a clash is a programming error.
		if err := reg.Register(m); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds a metric under its name. Duplicate names are rejected.
func (r *Registry) Register(m Metric) error {
	name := m.Name()
	if name == "" {
		return fmt.Errorf("registry: metric with empty name")
	}
	if _, exists := r.metrics[name]; exists {
		return fmt.Errorf("registry: duplicate metric %q", name)
	}
	r.metrics[name] = m
	return nil
}

// Get returns the metric registered under name.
func (r *Registry) Get(name string) (Metric, bool) {
	m, ok := r.metrics[name]
	return m, ok
}

// Names returns all registered metric names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
