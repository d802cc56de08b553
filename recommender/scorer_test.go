package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoreMatrix builds a small matrix by hand: correlations out of anime 1 and
// 2 into candidates 3, 4 and 5.
func scoreMatrix() *Matrix {
	m := newMatrix([]int{1, 2, 3, 4, 5})
	m.set(m.idx[1], m.idx[3], 0.8)
	m.set(m.idx[1], m.idx[4], 0.2)
	m.set(m.idx[2], m.idx[3], 0.5)
	m.set(m.idx[2], m.idx[5], -0.4)
	m.set(m.idx[1], m.idx[2], 0.1)
	return m
}

func TestScoreAccumulatesAcrossProfileEntries(t *testing.T) {
	m := scoreMatrix()
	out := Score(m, map[int]float64{1: 10, 2: 2}, 10)

	require.NotEmpty(t, out)
	scores := map[int]float64{}
	for _, s := range out {
		scores[s.AnimeID] = s.Score
	}
	// Anime 3 hears from both profile entries: 0.8*10 + 0.5*2.
	assert.InDelta(t, 9.0, scores[3], 1e-9)
	assert.InDelta(t, 2.0, scores[4], 1e-9)
	assert.InDelta(t, -0.8, scores[5], 1e-9)
}

func TestScoreExcludesProfileAnimes(t *testing.T) {
	m := scoreMatrix()
	out := Score(m, map[int]float64{1: 10, 2: 2}, 10)

	for _, s := range out {
		assert.NotEqual(t, 1, s.AnimeID)
		assert.NotEqual(t, 2, s.AnimeID)
	}
}

func TestScoreOrderAndTopN(t *testing.T) {
	m := scoreMatrix()
	out := Score(m, map[int]float64{1: 10, 2: 2}, 2)

	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].AnimeID)
	assert.Equal(t, 4, out[1].AnimeID)
	assert.GreaterOrEqual(t, out[0].Score, out[1].Score)
}

func TestScoreTieBreaksOnAnimeID(t *testing.T) {
	m := newMatrix([]int{1, 7, 9, 3})
	m.set(m.idx[1], m.idx[7], 0.5)
	m.set(m.idx[1], m.idx[9], 0.5)
	m.set(m.idx[1], m.idx[3], 0.5)
	out := Score(m, map[int]float64{1: 5}, 10)

	require.Len(t, out, 3)
	assert.Equal(t, []int{3, 7, 9}, []int{out[0].AnimeID, out[1].AnimeID, out[2].AnimeID})
}

func TestScoreSkipsUnknownProfileAnimes(t *testing.T) {
	m := scoreMatrix()
	out := Score(m, map[int]float64{1: 10, 999999999: 8}, 10)

	require.NotEmpty(t, out)
	scores := map[int]float64{}
	for _, s := range out {
		scores[s.AnimeID] = s.Score
	}
	assert.InDelta(t, 8.0, scores[3], 1e-9)
}

func TestScoreEmptyResultIsSuccess(t *testing.T) {
	m := scoreMatrix()

	assert.Empty(t, Score(m, map[int]float64{999999999: 10}, 10))

	// A profile covering every anime the model knows leaves no candidates.
	assert.Empty(t, Score(m, map[int]float64{1: 5, 2: 5, 3: 5, 4: 5, 5: 5}, 10))
}

func TestScoreDefaultTopN(t *testing.T) {
	m := newMatrix([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	for id := 1; id <= 12; id++ {
		m.set(m.idx[0], m.idx[id], float64(id)/100)
	}
	out := Score(m, map[int]float64{0: 10}, 0)

	assert.Len(t, out, DefaultTopN)
}

func TestScoreIdempotent(t *testing.T) {
	m := scoreMatrix()
	profile := map[int]float64{1: 10, 2: 2}

	first := Score(m, profile, 10)
	second := Score(m, profile, 10)
	assert.Equal(t, first, second)
}
