package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaEdges(t *testing.T) {
	a := Area{X: 2, Y: 3, Width: 10, Height: 4}
	assert.Equal(t, 12, a.Right())
	assert.Equal(t, 7, a.Bottom())
	assert.Equal(t, 40, a.Size())
}

func TestAreaSizeDegenerate(t *testing.T) {
	assert.Equal(t, 0, Area{Width: 0, Height: 5}.Size())
	assert.Equal(t, 0, Area{Width: 5, Height: -1}.Size())
}
