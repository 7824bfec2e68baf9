package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/showcase/core"
)

func TestAreaIntersect(t *testing.T) {
	tests := []struct {
		name  string
		a, b  core.Area
		want  core.Area
		touch bool
	}{
		{"overlap", core.Area{0, 0, 10, 10}, core.Area{5, 5, 10, 10}, core.Area{5, 5, 5, 5}, true},
		{"contained", core.Area{0, 0, 10, 10}, core.Area{2, 2, 3, 3}, core.Area{2, 2, 3, 3}, true},
		{"edge adjacent", core.Area{0, 0, 10, 10}, core.Area{0, 10, 10, 5}, core.Area{0, 10, 10, 0}, true},
		{"disjoint", core.Area{0, 0, 10, 10}, core.Area{0, 11, 10, 5}, core.Area{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AreaIntersect(tt.a, tt.b)
			assert.Equal(t, tt.touch, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAreaExpand(t *testing.T) {
	a := core.Area{X: 0, Y: 10, Width: 80, Height: 24}

	shrunk := AreaExpand(a, 0, 0, -2, 0)
	assert.Equal(t, core.Area{X: 0, Y: 10, Width: 80, Height: 22}, shrunk)

	grown := AreaExpand(a, 1, 1, 1, 1)
	assert.Equal(t, core.Area{X: -1, Y: 9, Width: 82, Height: 26}, grown)

	collapsed := AreaExpand(a, -20, 0, -20, 0)
	assert.Equal(t, 0, collapsed.Height)
}

func TestAreaContainsAndCenter(t *testing.T) {
	a := core.Area{X: 4, Y: 2, Width: 10, Height: 6}
	assert.True(t, AreaContains(a, 4, 2))
	assert.False(t, AreaContains(a, 14, 2))
	assert.Equal(t, core.Point{X: 9, Y: 5}, AreaCenter(a))
}

func TestEasing(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)
	assert.Equal(t, 1.0, EaseOutCubic(2))
	assert.InDelta(t, 0.0, EaseInOutSine(0), 1e-9)
	assert.InDelta(t, 1.0, EaseInOutSine(0.5), 1e-9)
	assert.InDelta(t, 0.0, EaseInOutSine(1), 1e-9)
	assert.Equal(t, 1.0, Progress(5, 0))
	assert.Equal(t, 0.25, Progress(1, 4))
}
