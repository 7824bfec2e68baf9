package status

import (
	"slices"
	"strings"
	"sync"
)

// MetricMap holds named metrics of type T
// Get allocates under the lock once per name, callers cache the pointer and
// update it without locking. Names are kept sorted so reads need no sort.
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	names []string
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for name, registering it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[name] = ptr
	i, _ := slices.BinarySearch(m.names, name)
	m.names = slices.Insert(m.names, i, name)
	return ptr
}

// Has reports whether name was registered, without registering it
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[name]
	return ok
}

// Range visits every metric in name order
func (m *MetricMap[T]) Range(fn func(name string, ptr *T)) {
	m.RangePrefix("", fn)
}

// RangePrefix visits, in name order, the metrics whose name starts with prefix
func (m *MetricMap[T]) RangePrefix(prefix string, fn func(name string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, _ := slices.BinarySearch(m.names, prefix)
	for ; i < len(m.names) && strings.HasPrefix(m.names[i], prefix); i++ {
		fn(m.names[i], m.items[m.names[i]])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.names)
}
