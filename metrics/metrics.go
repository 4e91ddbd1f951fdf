// Package metrics is a small in-process registry of counters and gauges.
package metrics

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue represents the value of a metric for one label set
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. Counters keep one running total per
// label set; gauges keep only the last value recorded.
type Registry struct {
	metrics map[string]Metric
	values  map[string]map[string]*MetricValue // name -> label key -> value
	last    map[string]*MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]map[string]*MetricValue),
		last:    make(map[string]*MetricValue),
	}
}

// Register declares a metric. Values recorded under an unregistered name, or
// with the wrong type, are dropped.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; !ok || metric.Type != Counter {
		return
	}

	series, ok := r.values[name]
	if !ok {
		series = make(map[string]*MetricValue)
		r.values[name] = series
	}

	key := labelKey(labels)
	v, ok := series[key]
	if !ok {
		v = &MetricValue{Labels: maps.Clone(labels)}
		series[key] = v
	}
	v.Value += value
	v.Timestamp = time.Now()
	r.last[name] = v
}

func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; !ok || metric.Type != Gauge {
		return
	}

	v := &MetricValue{
		Value:     value,
		Timestamp: time.Now(),
		Labels:    maps.Clone(labels),
	}
	r.values[name] = map[string]*MetricValue{labelKey(labels): v}
	r.last[name] = v
}

// Sum adds up the values recorded for name whose labels include all of
// the given labels. A nil labels map matches everything.
func (r *Registry) Sum(name string, labels map[string]string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, v := range r.values[name] {
		if matches(v.Labels, labels) {
			total += v.Value
		}
	}
	return total
}

// Last returns the most recently updated value for name. For a counter this
// is the running total of the label set that was incremented last.
func (r *Registry) Last(name string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.last[name]
	if !ok {
		return 0, false
	}
	return v.Value, true
}

// GetMetrics returns a copy of every recorded value, one per label set.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue, len(r.values))
	for name, series := range r.values {
		values := make([]MetricValue, 0, len(series))
		for _, key := range slices.Sorted(maps.Keys(series)) {
			v := *series[key]
			v.Labels = maps.Clone(v.Labels)
			values = append(values, v)
		}
		result[name] = values
	}
	return result
}

// labelKey renders labels in sorted key order so equal sets share a key.
func labelKey(labels map[string]string) string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(labels)) {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
		b.WriteByte(0)
	}
	return b.String()
}

func matches(have, want map[string]string) bool {
	for k, v := range want {
		if have[k] != v {
			return false
		}
	}
	return true
}
