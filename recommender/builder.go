package recommender

import (
	"math"
	"runtime"
	"sort"
	"sync"
)

// BuildOptions tune the correlation pass.
type BuildOptions struct {
	// MinPeriods is the minimum number of users who must have rated both
	// animes of a pair before its correlation counts as defined.
	MinPeriods int
	// Workers bounds the accumulation worker pool; 0 means GOMAXPROCS.
	Workers int
}

// DefaultBuildOptions mirrors the overlap guard the model was tuned with.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{MinPeriods: 500}
}

// pairSums holds the running Pearson terms for one unordered anime pair,
// accumulated over users who rated both (pairwise-complete observations).
// The a-side is always the smaller anime id.
type pairSums struct {
	n   int
	sa  float64
	sb  float64
	sab float64
	sa2 float64
	sb2 float64
}

// itemSums holds the per-anime terms backing the diagonal.
type itemSums struct {
	n  int
	s  float64
	s2 float64
}

type partialAcc struct {
	pairs map[uint64]*pairSums
	items map[int]*itemSums
}

func newPartialAcc() *partialAcc {
	return &partialAcc{
		pairs: make(map[uint64]*pairSums, 1<<12),
		items: make(map[int]*itemSums, 1<<10),
	}
}

func (p *partialAcc) addPair(a, b int, ra, rb float64) {
	if a > b {
		a, b = b, a
		ra, rb = rb, ra
	}
	k := itemPairKey(a, b)
	ps := p.pairs[k]
	if ps == nil {
		ps = &pairSums{}
		p.pairs[k] = ps
	}
	ps.n++
	ps.sa += ra
	ps.sb += rb
	ps.sab += ra * rb
	ps.sa2 += ra * ra
	ps.sb2 += rb * rb
}

func (p *partialAcc) addItem(id int, r float64) {
	is := p.items[id]
	if is == nil {
		is = &itemSums{}
		p.items[id] = is
	}
	is.n++
	is.s += r
	is.s2 += r * r
}

func mergeAcc(dst, src *partialAcc) {
	for k, s := range src.pairs {
		d := dst.pairs[k]
		if d == nil {
			dst.pairs[k] = s
			continue
		}
		d.n += s.n
		d.sa += s.sa
		d.sb += s.sb
		d.sab += s.sab
		d.sa2 += s.sa2
		d.sb2 += s.sb2
	}
	for id, s := range src.items {
		d := dst.items[id]
		if d == nil {
			dst.items[id] = s
			continue
		}
		d.n += s.n
		d.s += s.s
		d.s2 += s.s2
	}
}

// processUserBlock folds one block of users into acc. Cells a user never
// rated simply produce no pair terms, so missing ratings are excluded from
// the math rather than treated as zeros.
func processUserBlock(acc *partialAcc, users []int, userRatings map[int]map[int]float64) {
	var ids []int
	for _, u := range users {
		ru := userRatings[u]
		if len(ru) == 0 {
			continue
		}
		ids = ids[:0]
		for id := range ru {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for i, a := range ids {
			acc.addItem(a, ru[a])
			for _, b := range ids[i+1:] {
				acc.addPair(a, b, ru[a], ru[b])
			}
		}
	}
}

// Build pivots the filtered ratings into a per-user view and computes the
// pairwise Pearson correlation between every pair of animes over their
// co-raters. Pairs with fewer than MinPeriods co-raters, and pairs where
// either side has zero variance among the co-raters, stay undefined.
// The accumulation runs on a worker pool; training is a batch job and runs
// to completion once started.
func Build(ratings []Rating, opts BuildOptions) *Matrix {
	userRatings := make(map[int]map[int]float64)
	for _, r := range ratings {
		ru := userRatings[r.UserID]
		if ru == nil {
			ru = make(map[int]float64)
			userRatings[r.UserID] = ru
		}
		ru[r.AnimeID] = r.Score
	}

	users := make([]int, 0, len(userRatings))
	for u := range userRatings {
		users = append(users, u)
	}
	sort.Ints(users)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(users) {
		workers = len(users)
	}
	if workers < 1 {
		workers = 1
	}

	// Walk the user list block by block; rounding up the block size can
	// leave fewer blocks than workers, never an out-of-range block.
	partials := make([]*partialAcc, 0, workers)
	var wg sync.WaitGroup
	blockSize := (len(users) + workers - 1) / workers
	for lo := 0; lo < len(users); lo += blockSize {
		hi := lo + blockSize
		if hi > len(users) {
			hi = len(users)
		}
		p := newPartialAcc()
		partials = append(partials, p)
		wg.Add(1)
		go func(acc *partialAcc, block []int) {
			defer wg.Done()
			processUserBlock(acc, block, userRatings)
		}(p, users[lo:hi])
	}
	wg.Wait()

	acc := newPartialAcc()
	for _, p := range partials {
		mergeAcc(acc, p)
	}

	ids := make([]int, 0, len(acc.items))
	for id := range acc.items {
		ids = append(ids, id)
	}
	m := newMatrix(ids)

	for k, ps := range acc.pairs {
		if ps.n < opts.MinPeriods {
			continue
		}
		n := float64(ps.n)
		num := n*ps.sab - ps.sa*ps.sb
		da := n*ps.sa2 - ps.sa*ps.sa
		db := n*ps.sb2 - ps.sb*ps.sb
		if da <= 0 || db <= 0 {
			continue // zero variance on a side, correlation undefined
		}
		r := num / math.Sqrt(da*db)
		if r > 1 {
			r = 1
		} else if r < -1 {
			r = -1
		}
		a, b := splitItemPairKey(k)
		m.set(m.idx[a], m.idx[b], r)
	}

	for id, is := range acc.items {
		if is.n < opts.MinPeriods {
			continue
		}
		n := float64(is.n)
		if n*is.s2-is.s*is.s <= 0 {
			continue
		}
		i := m.idx[id]
		m.set(i, i, 1)
	}

	return m
}
