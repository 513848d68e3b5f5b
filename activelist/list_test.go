package activelist_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/viewshed/activelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Sentinel and basic contract
//----------------------------------------------------------------------------//

// TestNew_Sentinel checks the seeded state of a fresh list.
func TestNew_Sentinel(t *testing.T) {
	l := activelist.New()
	assert.Equal(t, 0, l.Len())
	assert.True(t, math.IsInf(l.MaxGradientAtOrBelow(1e300), -1), "finite queries never see the sentinel")
	assert.Equal(t, 0.0, l.MaxGradientAtOrBelow(math.Inf(1)))
	require.NoError(t, l.CheckInvariants())
}

// TestInsertDelete_Errors covers duplicate inserts and missing deletes.
func TestInsertDelete_Errors(t *testing.T) {
	l := activelist.New()
	require.NoError(t, l.Insert(2, 7, 0.5))
	require.ErrorIs(t, l.Insert(2, 7, 1.5), activelist.ErrDuplicateKey)
	assert.Equal(t, 1, l.Len())

	// Same distance, different id is a distinct key.
	require.NoError(t, l.Insert(2, 8, -1))
	assert.Equal(t, 2, l.Len())

	require.ErrorIs(t, l.Delete(3, 7), activelist.ErrKeyNotFound)
	require.ErrorIs(t, l.Delete(2, 9), activelist.ErrKeyNotFound)
	require.ErrorIs(t, l.Delete(math.Inf(1), activelist.SentinelID), activelist.ErrKeyNotFound)

	require.NoError(t, l.Delete(2, 7))
	require.NoError(t, l.Delete(2, 8))
	assert.Equal(t, 0, l.Len())
	require.NoError(t, l.CheckInvariants())
}

// TestMaxGradientAtOrBelow_Boundaries checks the inclusive bound.
func TestMaxGradientAtOrBelow_Boundaries(t *testing.T) {
	l := activelist.New()
	require.NoError(t, l.Insert(1, 1, 0.1))
	require.NoError(t, l.Insert(2, 2, 0.9))
	require.NoError(t, l.Insert(3, 3, 0.4))

	cases := []struct {
		name string
		d    float64
		want float64
	}{
		{"BelowAll", 0.5, math.Inf(-1)},
		{"ExactlyFirst", 1, 0.1},
		{"BetweenFirstSecond", 1.5, 0.1},
		{"ExactlySecond", 2, 0.9},
		{"AboveAll", 10, 0.9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.MaxGradientAtOrBelow(tc.d))
		})
	}

	require.NoError(t, l.Delete(2, 2))
	assert.Equal(t, 0.4, l.MaxGradientAtOrBelow(10))
}

//----------------------------------------------------------------------------//
// Randomized oracle
//----------------------------------------------------------------------------//

type entry struct {
	d  float64
	id int
	g  float64
}

// oracleMax is the brute-force reference for MaxGradientAtOrBelow.
func oracleMax(live map[int]entry, d float64) float64 {
	best := math.Inf(-1)
	for _, e := range live {
		if e.d <= d && e.g > best {
			best = e.g
		}
	}
	return best
}

// TestList_MatchesOracle drives random inserts, deletes and queries and
// compares each answer with a linear scan. Distances are drawn from a small
// set so that equal distances with different ids are common.
func TestList_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := activelist.New()
	live := map[int]entry{}
	nextID := 0

	for step := 0; step < 5000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(live) == 0:
			e := entry{d: float64(rng.Intn(50)) / 4, id: nextID, g: rng.NormFloat64()}
			nextID++
			require.NoError(t, l.Insert(e.d, e.id, e.g))
			live[e.id] = e
		case op == 1:
			for id, e := range live {
				require.NoError(t, l.Delete(e.d, e.id))
				delete(live, id)
				break
			}
		default:
			d := rng.Float64() * 13
			require.Equal(t, oracleMax(live, d), l.MaxGradientAtOrBelow(d), "step %d d=%g", step, d)
		}
		require.Equal(t, len(live), l.Len())
	}
	require.NoError(t, l.CheckInvariants())
}

// TestList_StaysBalanced inserts sorted keys, the classic worst case for an
// unbalanced tree, and checks the height stays logarithmic.
func TestList_StaysBalanced(t *testing.T) {
	const n = 4096
	l := activelist.New()
	for i := 0; i < n; i++ {
		require.NoError(t, l.Insert(float64(i), i, float64(i%17)))
	}
	require.NoError(t, l.CheckInvariants())
	// AVL height ≤ 1.44·log2(n+2).
	assert.LessOrEqual(t, l.Height(), int(1.45*math.Log2(n+2))+1)

	for i := 0; i < n; i += 2 {
		require.NoError(t, l.Delete(float64(i), i))
	}
	require.NoError(t, l.CheckInvariants())
	assert.Equal(t, n/2, l.Len())
	assert.Equal(t, 16.0, l.MaxGradientAtOrBelow(float64(n)))
}
