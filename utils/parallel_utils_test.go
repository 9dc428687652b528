package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMap(t *testing.T) {
	// Partitions must tile [0, maxIndex) with at most one item of imbalance
	for _, tc := range [][2]int{{4, 100}, {3, 10}, {7, 22}, {1, 5}, {8, 8}} {
		pm := NewPartitionMap(tc[0], tc[1])
		var covered int
		prevEnd := 0
		for n := 0; n < pm.ParallelDegree; n++ {
			kMin, kMax := pm.GetBucketRange(n)
			require.Equal(t, prevEnd, kMin)
			require.LessOrEqual(t, kMin, kMax)
			covered += kMax - kMin
			prevEnd = kMax
			assert.Equal(t, kMax-kMin, pm.GetBucketDimension(n))
		}
		assert.Equal(t, tc[1], covered)
		assert.Equal(t, tc[1], prevEnd)
	}
}

func TestPartitionMapBalance(t *testing.T) {
	pm := NewPartitionMap(3, 10)
	min, max := pm.GetBucketDimension(0), pm.GetBucketDimension(0)
	for n := 1; n < pm.ParallelDegree; n++ {
		d := pm.GetBucketDimension(n)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	assert.LessOrEqual(t, max-min, 1)
}

func TestPartitionMapDegenerate(t *testing.T) {
	// More workers than work items collapses to one per item
	pm := NewPartitionMap(16, 3)
	assert.Equal(t, 3, pm.ParallelDegree)

	// Zero items yields a single empty bucket rather than a panic
	pm = NewPartitionMap(4, 0)
	require.Equal(t, 1, pm.ParallelDegree)
	kMin, kMax := pm.GetBucketRange(0)
	assert.Equal(t, kMin, kMax)
}
