package recommender

import (
	"container/heap"
)

// DefaultTopN is the recommendation list length when the caller asks for none.
const DefaultTopN = 10

// Scored is one ranked recommendation candidate.
type Scored struct {
	AnimeID int
	Score   float64
}

// scoredHeap is a min-heap holding the current best topN candidates; the
// worst of them sits at the root and is evicted first. Worse means lower
// score, or same score with a larger id, matching the final ordering of
// score descending then id ascending.
type scoredHeap []Scored

func (h scoredHeap) Len() int { return len(h) }
func (h scoredHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].AnimeID > h[j].AnimeID
}
func (h scoredHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x interface{}) { *h = append(*h, x.(Scored)) }
func (h *scoredHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Score turns a resolved rating profile into the topN recommendation
// candidates. Every profile anime known to the matrix contributes its
// similarity row scaled by the given rating; contributions to the same
// candidate sum up across profile entries. Animes outside the matrix are
// skipped silently, profile animes never appear in the output, and ties
// break on anime id ascending. An empty result is a valid outcome.
func Score(m *Matrix, profile map[int]float64, topN int) []Scored {
	if topN <= 0 {
		topN = DefaultTopN
	}

	totals := make(map[int]float64)
	for animeID, rating := range profile {
		if !m.Has(animeID) {
			continue
		}
		for _, e := range m.Row(animeID) {
			totals[e.AnimeID] += e.Corr * rating
		}
	}
	for animeID := range profile {
		delete(totals, animeID)
	}
	if len(totals) == 0 {
		return nil
	}

	h := make(scoredHeap, 0, topN+1)
	for animeID, score := range totals {
		heap.Push(&h, Scored{AnimeID: animeID, Score: score})
		if h.Len() > topN {
			heap.Pop(&h)
		}
	}

	out := make([]Scored, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Scored)
	}
	return out
}
