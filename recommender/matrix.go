package recommender

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
)

// Matrix is the symmetric item-by-item Pearson correlation table produced by
// one training run. Anime ids are mapped onto dense indices; a pair is either
// defined (correlation in [-1, 1]) or absent when the co-rater overlap was too
// small or a column had zero variance. Missing is never encoded as zero.
// A Matrix is immutable once built.
type Matrix struct {
	ids  []int       // dense index -> anime id, ascending
	idx  map[int]int // anime id -> dense index
	vals []float64   // n*n correlation values, row-major
	def  []bool      // n*n defined flags, row-major
}

// Entry is one defined correlation from a similarity row.
type Entry struct {
	AnimeID int
	Corr    float64
}

func newMatrix(ids []int) *Matrix {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)
	idx := make(map[int]int, len(sorted))
	for i, id := range sorted {
		idx[id] = i
	}
	n := len(sorted)
	return &Matrix{
		ids:  sorted,
		idx:  idx,
		vals: make([]float64, n*n),
		def:  make([]bool, n*n),
	}
}

func (m *Matrix) set(i, j int, v float64) {
	n := len(m.ids)
	m.vals[i*n+j] = v
	m.def[i*n+j] = true
	m.vals[j*n+i] = v
	m.def[j*n+i] = true
}

// Len returns the number of animes in the matrix.
func (m *Matrix) Len() int { return len(m.ids) }

// Items returns the anime ids covered by the matrix, ascending.
func (m *Matrix) Items() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// Has reports whether animeID is a column of the matrix.
func (m *Matrix) Has(animeID int) bool {
	_, ok := m.idx[animeID]
	return ok
}

// Corr returns the correlation between two animes and whether it is defined.
func (m *Matrix) Corr(a, b int) (float64, bool) {
	i, ok := m.idx[a]
	if !ok {
		return 0, false
	}
	j, ok := m.idx[b]
	if !ok {
		return 0, false
	}
	n := len(m.ids)
	if !m.def[i*n+j] {
		return 0, false
	}
	return m.vals[i*n+j], true
}

// Row returns every defined correlation out of animeID, including the
// self-correlation when defined. The slice is ordered by anime id.
func (m *Matrix) Row(animeID int) []Entry {
	i, ok := m.idx[animeID]
	if !ok {
		return nil
	}
	n := len(m.ids)
	out := make([]Entry, 0, n)
	for j := 0; j < n; j++ {
		if m.def[i*n+j] {
			out = append(out, Entry{AnimeID: m.ids[j], Corr: m.vals[i*n+j]})
		}
	}
	return out
}

// matrixWire is the persisted shape of a Matrix: ids label both axes of the
// row-major value/defined tables.
type matrixWire struct {
	IDs  []int
	Vals []float64
	Def  []bool
}

// GobEncode implements gob.GobEncoder.
func (m *Matrix) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	w := matrixWire{IDs: m.ids, Vals: m.vals, Def: m.def}
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (m *Matrix) GobDecode(data []byte) error {
	var w matrixWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	n := len(w.IDs)
	if len(w.Vals) != n*n || len(w.Def) != n*n {
		return fmt.Errorf("correlation table shape mismatch: %d ids, %d values", n, len(w.Vals))
	}
	m.ids = w.IDs
	m.vals = w.Vals
	m.def = w.Def
	m.idx = make(map[int]int, n)
	for i, id := range w.IDs {
		m.idx[id] = i
	}
	return nil
}
