package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Counters.Get("pace.scroll.passed")
	b := r.Counters.Get("pace.scroll.passed")
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Counters.Count())
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Counters.Get("engine.frames").Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8), r.Counters.Get("engine.frames").Load())
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Counters.Get("reveal.revealed").Store(3)
	r.Gauges.Get("page.scroll").Set(12.5)
	r.Flags.Get("reveal.fallback").Store(true)

	assert.Equal(t, map[string]string{
		"reveal.revealed": "3",
		"page.scroll":     "12.50",
		"reveal.fallback": "true",
	}, r.Snapshot())
}

func TestRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b")
	m.Get("a")
	m.Get("c")
	var keys []string
	m.Range(func(k string, _ *AtomicFloat) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestRangePrefix(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"pace.scroll.passed", "engine.frames", "pace.scroll.dropped", "pacer", "reveal.revealed"} {
		m.Get(k)
	}
	var keys []string
	m.RangePrefix("pace.", func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	assert.Equal(t, []string{"pace.scroll.dropped", "pace.scroll.passed"}, keys)

	keys = nil
	m.RangePrefix("zzz", func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	assert.Empty(t, keys)
}

func TestHasDoesNotRegister(t *testing.T) {
	m := NewMetricMap[atomic.Bool]()
	assert.False(t, m.Has("audio.muted"))
	assert.Zero(t, m.Count())
	m.Get("audio.muted")
	assert.True(t, m.Has("audio.muted"))
}

func TestSnapshotPrefixes(t *testing.T) {
	r := NewRegistry()
	r.Counters.Get("content.reloads").Store(2)
	r.Counters.Get("engine.frames").Store(90)
	r.Flags.Get("reveal.fallback").Store(false)

	assert.Equal(t, map[string]string{
		"content.reloads": "2",
		"reveal.fallback": "false",
	}, r.Snapshot("content.", "reveal."))
}
