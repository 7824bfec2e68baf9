package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the page metrics facade
// Handlers cache pointers during init; the loop writes directly to atomics
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Flags    *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Flags:    NewMetricMap[atomic.Bool](),
	}
}

// Snapshot renders metrics as strings keyed by name
// With prefixes, only names under one of them are included
func (r *Registry) Snapshot(prefixes ...string) map[string]string {
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}
	out := make(map[string]string)
	for _, p := range prefixes {
		r.Counters.RangePrefix(p, func(k string, v *atomic.Int64) { out[k] = fmt.Sprint(v.Load()) })
		r.Gauges.RangePrefix(p, func(k string, v *AtomicFloat) { out[k] = fmt.Sprintf("%.2f", v.Get()) })
		r.Flags.RangePrefix(p, func(k string, v *atomic.Bool) { out[k] = fmt.Sprint(v.Load()) })
	}
	return out
}
