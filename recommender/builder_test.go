package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ratingsFixture: three users rate anime 1 and 2 in lockstep (perfect
// positive correlation) and anime 3 in reverse (perfect negative), while
// anime 4 gets the same score from everybody (zero variance).
func ratingsFixture() []Rating {
	return []Rating{
		{UserID: 1, AnimeID: 1, Score: 1}, {UserID: 1, AnimeID: 2, Score: 2}, {UserID: 1, AnimeID: 3, Score: 3}, {UserID: 1, AnimeID: 4, Score: 5},
		{UserID: 2, AnimeID: 1, Score: 2}, {UserID: 2, AnimeID: 2, Score: 4}, {UserID: 2, AnimeID: 3, Score: 2}, {UserID: 2, AnimeID: 4, Score: 5},
		{UserID: 3, AnimeID: 1, Score: 3}, {UserID: 3, AnimeID: 2, Score: 6}, {UserID: 3, AnimeID: 3, Score: 1}, {UserID: 3, AnimeID: 4, Score: 5},
	}
}

func TestBuildPearsonValues(t *testing.T) {
	m := Build(ratingsFixture(), BuildOptions{MinPeriods: 3})

	c, ok := m.Corr(1, 2)
	require.True(t, ok)
	assert.InDelta(t, 1.0, c, 1e-9)

	c, ok = m.Corr(1, 3)
	require.True(t, ok)
	assert.InDelta(t, -1.0, c, 1e-9)
}

func TestBuildSymmetry(t *testing.T) {
	m := Build(ratingsFixture(), BuildOptions{MinPeriods: 3})

	for _, a := range m.Items() {
		for _, b := range m.Items() {
			ab, okAB := m.Corr(a, b)
			ba, okBA := m.Corr(b, a)
			assert.Equal(t, okAB, okBA)
			assert.Equal(t, ab, ba)
		}
	}
}

func TestBuildMinPeriodsGuard(t *testing.T) {
	// Only two users co-rated the pair; with MinPeriods 3 the entry must be
	// absent rather than a number computed from a tiny overlap.
	ratings := []Rating{
		{UserID: 1, AnimeID: 1, Score: 2}, {UserID: 1, AnimeID: 2, Score: 4},
		{UserID: 2, AnimeID: 1, Score: 6}, {UserID: 2, AnimeID: 2, Score: 8},
		{UserID: 3, AnimeID: 1, Score: 5},
	}
	m := Build(ratings, BuildOptions{MinPeriods: 3})

	_, ok := m.Corr(1, 2)
	assert.False(t, ok)
	assert.True(t, m.Has(1))
	assert.True(t, m.Has(2))
}

func TestBuildZeroVarianceUndefined(t *testing.T) {
	m := Build(ratingsFixture(), BuildOptions{MinPeriods: 3})

	_, ok := m.Corr(1, 4)
	assert.False(t, ok, "constant column must yield an undefined correlation")
	_, ok = m.Corr(4, 4)
	assert.False(t, ok, "constant column has no defined self-correlation")
}

func TestBuildDiagonal(t *testing.T) {
	m := Build(ratingsFixture(), BuildOptions{MinPeriods: 3})

	c, ok := m.Corr(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, c)
}

func TestBuildMissingIsNotZero(t *testing.T) {
	// User 3 never rated anime 2. If the missing cell were treated as a
	// zero rating the correlation would move; pairwise-complete math over
	// users 1 and 2 alone still gives a perfect correlation.
	ratings := []Rating{
		{UserID: 1, AnimeID: 1, Score: 2}, {UserID: 1, AnimeID: 2, Score: 1},
		{UserID: 2, AnimeID: 1, Score: 4}, {UserID: 2, AnimeID: 2, Score: 2},
		{UserID: 3, AnimeID: 1, Score: 9},
	}
	m := Build(ratings, BuildOptions{MinPeriods: 2})

	c, ok := m.Corr(1, 2)
	require.True(t, ok)
	assert.InDelta(t, 1.0, c, 1e-9)
}

func TestBuildUnevenWorkerBlocks(t *testing.T) {
	// Five users over four workers rounds the block size up to two, so the
	// user list spans three blocks, not four. Sliced per worker index this
	// used to read past the end of the list and panic.
	var ratings []Rating
	for u := 1; u <= 5; u++ {
		ratings = append(ratings,
			Rating{UserID: u, AnimeID: 1, Score: float64(u)},
			Rating{UserID: u, AnimeID: 2, Score: float64(2 * u)},
		)
	}

	parallel := Build(ratings, BuildOptions{MinPeriods: 2, Workers: 4})
	serial := Build(ratings, BuildOptions{MinPeriods: 2, Workers: 1})

	require.Equal(t, serial.Items(), parallel.Items())
	c, ok := parallel.Corr(1, 2)
	require.True(t, ok)
	assert.InDelta(t, 1.0, c, 1e-9)
}

func TestBuildSingleWorkerMatchesParallel(t *testing.T) {
	serial := Build(ratingsFixture(), BuildOptions{MinPeriods: 3, Workers: 1})
	parallel := Build(ratingsFixture(), BuildOptions{MinPeriods: 3, Workers: 4})

	require.Equal(t, serial.Items(), parallel.Items())
	for _, a := range serial.Items() {
		for _, b := range serial.Items() {
			sv, sok := serial.Corr(a, b)
			pv, pok := parallel.Corr(a, b)
			assert.Equal(t, sok, pok)
			assert.InDelta(t, sv, pv, 1e-12)
		}
	}
}
