package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAds(n int) []AdRecord {
	ads := make([]AdRecord, n)
	for i := range ads {
		ads[i] = AdRecord{ID: fmt.Sprintf("ad-%d", i)}
	}
	return ads
}

func TestDistributeAdsScenario(t *testing.T) {
	m := DistributeAds(makeAds(10), 3, 5, 20)

	assert.Equal(t, []int{3, 8, 13, 18}, m.Positions())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 24, m.AugmentedCount(20))
	assert.Equal(t, []int{3, 9, 15, 21}, m.AugmentedPositions())

	ad, ok := m.At(8)
	require.True(t, ok)
	assert.Equal(t, "ad-1", ad.ID)
}

func TestDistributeAdsFirstPositionPastEnd(t *testing.T) {
	m := DistributeAds(makeAds(10), 10, 5, 5)

	assert.Zero(t, m.Len())
	assert.Equal(t, 5, m.AugmentedCount(5))
	for i := 0; i < 5; i++ {
		assert.False(t, m.IsAdPosition(i))
		assert.Equal(t, i, m.OriginalIndexOf(i))
	}
}

// TestPlacementCardinality checks the number of filled slots against
// min(M, floor((N-F-1)/I)+1) for F < N and 0 otherwise.
func TestPlacementCardinality(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for f := 0; f <= 12; f++ {
			for i := 1; i <= 7; i++ {
				for _, mAds := range []int{0, 1, 3, 50} {
					got := DistributeAds(makeAds(mAds), f, i, n).Len()
					want := 0
					if f < n {
						want = min(mAds, (n-f-1)/i+1)
					}
					require.Equalf(t, want, got, "N=%d F=%d I=%d M=%d", n, f, i, mAds)
				}
			}
		}
	}
}

// TestRoundTrip walks the augmented list, skipping ad slots, and expects the
// host's original sequence with no gaps or duplicates.
func TestRoundTrip(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for f := 0; f <= 6; f++ {
			for i := 1; i <= 4; i++ {
				m := DistributeAds(makeAds(8), f, i, n)
				var walked []int
				ads := 0
				for idx := 0; idx < m.AugmentedCount(n); idx++ {
					if m.IsAdPosition(idx) {
						ads++
						continue
					}
					orig := m.OriginalIndexOf(idx)
					walked = append(walked, orig)
					require.Equal(t, idx, m.AugmentedIndexOf(orig))
				}
				require.Equal(t, m.Len(), ads)
				require.Len(t, walked, n)
				for k, orig := range walked {
					require.Equalf(t, k, orig, "N=%d F=%d I=%d", n, f, i)
				}
			}
		}
	}
}

func TestAdAtMatchesKeys(t *testing.T) {
	m := DistributeAds(makeAds(10), 3, 5, 20)

	for j, pos := range m.AugmentedPositions() {
		ad, ok := m.AdAt(pos)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("ad-%d", j), ad.ID)
	}
	_, ok := m.AdAt(4)
	assert.False(t, ok)
	assert.Equal(t, 3, m.OriginalIndexOf(4))
	assert.Equal(t, 8, m.OriginalIndexOf(10))
}

func TestDistributeAdsInvalidInterval(t *testing.T) {
	assert.Zero(t, DistributeAds(makeAds(3), 0, 0, 10).Len())
	assert.Zero(t, DistributeAds(makeAds(3), -1, 2, 10).Len())
}
