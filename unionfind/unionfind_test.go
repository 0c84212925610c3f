package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidSize verifies that New rejects empty and negative universes.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		uf, err := unionfind.New(n)
		assert.Nil(t, uf)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "n=%d", n)
	}
}

// TestNew_Singletons verifies that every element starts in its own component.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Size())
	assert.Equal(t, 5, uf.Count())

	for p := 0; p < 5; p++ {
		root, err := uf.Find(p)
		require.NoError(t, err)
		assert.Equal(t, p, root)
	}
}

// TestUnion_CountAndConnectivity merges a chain 0-1-2 and a pair 3-4 and
// checks both the component count and the pairwise answers.
func TestUnion_CountAndConnectivity(t *testing.T) {
	uf, err := unionfind.New(6)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(1, 2))
	require.NoError(t, uf.Union(3, 4))
	assert.Equal(t, 3, uf.Count()) // {0,1,2} {3,4} {5}

	// Re-merging connected elements must not change the count.
	require.NoError(t, uf.Union(2, 0))
	assert.Equal(t, 3, uf.Count())

	cases := []struct {
		p, q int
		want bool
	}{
		{0, 2, true}, // transitive
		{2, 0, true}, // symmetric
		{3, 4, true},
		{4, 4, true}, // reflexive
		{0, 3, false},
		{5, 1, false},
	}
	for _, tc := range cases {
		got, err := uf.Connected(tc.p, tc.q)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Connected(%d,%d)", tc.p, tc.q)
	}
}

// TestOutOfRange verifies that every operation rejects ids outside [0, size)
// and leaves the structure untouched.
func TestOutOfRange(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	for _, bad := range []int{-1, 3, 42} {
		assert.ErrorIs(t, uf.Union(0, bad), unionfind.ErrElementOutOfRange)
		assert.ErrorIs(t, uf.Union(bad, 0), unionfind.ErrElementOutOfRange)

		_, err := uf.Connected(bad, 1)
		assert.ErrorIs(t, err, unionfind.ErrElementOutOfRange)
		_, err = uf.Connected(1, bad)
		assert.ErrorIs(t, err, unionfind.ErrElementOutOfRange)

		_, err = uf.Find(bad)
		assert.ErrorIs(t, err, unionfind.ErrElementOutOfRange)
	}
	assert.Equal(t, 3, uf.Count())
}

// TestUnion_MatchesNaiveLabels cross-checks UF against a naive relabelling
// partition over a long random sequence of unions.
func TestUnion_MatchesNaiveLabels(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))

	uf, err := unionfind.New(n)
	require.NoError(t, err)

	// label[i] is the component id; merging relabels every member of one side.
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 300; step++ {
		p, q := r.Intn(n), r.Intn(n)
		require.NoError(t, uf.Union(p, q))

		from, to := label[q], label[p]
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	distinct := make(map[int]struct{})
	for _, l := range label {
		distinct[l] = struct{}{}
	}
	assert.Equal(t, len(distinct), uf.Count())

	for k := 0; k < 1000; k++ {
		p, q := r.Intn(n), r.Intn(n)
		got, err := uf.Connected(p, q)
		require.NoError(t, err)
		if got != (label[p] == label[q]) {
			t.Fatalf("Connected(%d,%d)=%v; naive says %v", p, q, got, label[p] == label[q])
		}
	}
}
