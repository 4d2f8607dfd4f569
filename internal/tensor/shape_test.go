package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 0, Shape{4, 0, 2}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{0}.Validate())
	assert.NoError(t, Shape{3, 4}.Validate())
	assert.Error(t, Shape{3, -4}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	assert.Equal(t, 2, s[0])
	assert.False(t, s.Equal(c))
}
