package angle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNorm(t *testing.T) {
	assert.InDelta(t, 10.0, Norm(370.0), 1e-9)
	assert.InDelta(t, 350.0, Norm(-10.0), 1e-9)
	assert.InDelta(t, 0.0, Norm(360.0), 1e-9)
	assert.InDelta(t, 0.0, Norm(0.0), 1e-9)
}

func TestClosestDistance(t *testing.T) {
	assert.InDelta(t, 10.0, ClosestDistance(350.0, 0.0), 1e-9)
	assert.InDelta(t, -10.0, ClosestDistance(0.0, 350.0), 1e-9)
	assert.InDelta(t, 180.0, ClosestDistance(0.0, 180.0), 1e-9)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 10.0, Distance(350.0, 0.0), 1e-9)
	assert.InDelta(t, 180.0, Distance(0.0, 180.0), 1e-9)
	assert.InDelta(t, 0.0, Distance(45.0, 45.0), 1e-9)
}

func TestSignIndexAndLongitude(t *testing.T) {
	assert.Equal(t, 0, SignIndex(15.0))
	assert.Equal(t, 1, SignIndex(45.0))
	assert.Equal(t, 11, SignIndex(359.9))
	assert.InDelta(t, 15.0, SignLongitude(15.0), 1e-9)
	assert.InDelta(t, 15.0, SignLongitude(45.0), 1e-9)
}

func TestSignIndexWraps(t *testing.T) {
	assert.Equal(t, SignIndex(0.0), SignIndex(360.0))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(359.9999999, 0.0000001, 1e-6))
	assert.False(t, NearlyEqual(10.0, 20.0, 1e-6))
}
