package usecase

import (
	"sync/atomic"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
)

// modelSnapshot pairs a loaded matrix with the pointer record it came from.
// Snapshots are immutable; readers holding one keep a valid model even while
// a retrain installs its successor.
type modelSnapshot struct {
	pointer domain.ModelPointer
	matrix  *recommender.Matrix
}

// ModelCache is the in-process "current model" cell. Reads are lock-free;
// the only writer is a completed train (or a lazy first load, where a
// harmless last-writer-wins race is acceptable).
type ModelCache struct {
	v atomic.Pointer[modelSnapshot]
}

func NewModelCache() *ModelCache {
	return &ModelCache{}
}

func (c *ModelCache) get() *modelSnapshot {
	return c.v.Load()
}

func (c *ModelCache) replace(pointer domain.ModelPointer, matrix *recommender.Matrix) {
	c.v.Store(&modelSnapshot{pointer: pointer, matrix: matrix})
}
